package domain

// EquipmentItem дополнительное оборудование для съемки
// Неизменяемо после регистрации в каталоге, тарифицируется за час как зал
type EquipmentItem struct {
	// Name название позиции, уникально в рамках каталога
	Name string

	// HourlyRate стоимость часа аренды, неотрицательная
	HourlyRate float64
}
