package domain

// Hall зал фотостудии - основная бронируемая единица
// Неизменяем после регистрации в каталоге
type Hall struct {
	// Number уникальный номер зала, служит идентификатором
	Number int

	// HourlyRate стоимость часа аренды, неотрицательная
	HourlyRate float64

	// Capacity вместимость в людях, справочное поле
	Capacity int
}

// CombineRates возвращает суммарную часовую ставку двух залов,
// например для оценки стоимости съемки сразу в двух залах
func CombineRates(a, b Hall) float64 {
	return a.HourlyRate + b.HourlyRate
}

// SameHallIdentity проверяет, что два значения описывают один и тот же зал
// Идентичность зала определяется только его номером, ставка и вместимость
// в сравнении не участвуют
func SameHallIdentity(a, b Hall) bool {
	return a.Number == b.Number
}
