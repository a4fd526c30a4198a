package domain

// ComputeCost считает стоимость бронирования:
//
//	(ставка зала * часы + Σ ставка оборудования * часы) * (1 - скидка/100)
//
// Функция чистая и детерминированная; округление здесь не выполняется,
// до двух знаков округляет слой представления
func ComputeCost(hall Hall, equipment []BookingEquipment, durationHours int, discountPercent int) float64 {
	total := hall.HourlyRate * float64(durationHours)

	for _, item := range equipment {
		total += item.HourlyRate * float64(durationHours)
	}

	return total * (1 - float64(discountPercent)/100)
}
