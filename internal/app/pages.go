package app

import (
	"fmt"
	"strconv"
	"strings"

	"carshare/internal/editor"
	"carshare/internal/models"
)

// Field descriptors per entity page. Select options for foreign keys are
// built from the current cached lists, so the labels follow the data.

func CarFields() []editor.Field {
	return []editor.Field{
		{Key: "license_plate", Label: "Госномер", Type: editor.FieldText},
		{Key: "brand", Label: "Марка", Type: editor.FieldText},
		{Key: "model", Label: "Модель", Type: editor.FieldText},
		{Key: "year", Label: "Год выпуска", Type: editor.FieldNumber},
		{Key: "color", Label: "Цвет", Type: editor.FieldText},
		{Key: "category", Label: "Категория", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: string(models.CarCategoryEconomy), Label: "Эконом"},
			{Value: string(models.CarCategoryComfort), Label: "Комфорт"},
			{Value: string(models.CarCategoryBusiness), Label: "Бизнес"},
		}},
		{Key: "daily_price", Label: "Цена за сутки", Type: editor.FieldNumber},
		{Key: "current_mileage", Label: "Пробег", Type: editor.FieldNumber},
		{Key: "status", Label: "Статус", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: string(models.CarStatusAvailable), Label: "Доступен"},
			{Value: string(models.CarStatusRented), Label: "В аренде"},
			{Value: string(models.CarStatusMaintenance), Label: "На обслуживании"},
		}},
		{Key: "location", Label: "Местоположение", Type: editor.FieldText},
	}
}

func ClientFields() []editor.Field {
	return []editor.Field{
		{Key: "username", Label: "Логин", Type: editor.FieldText},
		{Key: "email", Label: "Email", Type: editor.FieldText},
		{Key: "full_name", Label: "ФИО", Type: editor.FieldText},
		{Key: "phone", Label: "Телефон", Type: editor.FieldText},
		{Key: "driver_license", Label: "Водительское удостоверение", Type: editor.FieldText},
		{Key: "role", Label: "Роль", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: string(models.ClientRoleClient), Label: "Клиент"},
			{Value: string(models.ClientRoleAdmin), Label: "Администратор"},
		}},
	}
}

func BookingFields(clients []models.Client, cars []models.Car) []editor.Field {
	return []editor.Field{
		{Key: "user_id", Label: "Клиент", Type: editor.FieldSelect, Options: ClientOptions(clients)},
		{Key: "car_id", Label: "Автомобиль", Type: editor.FieldSelect, Options: CarOptions(cars)},
		{Key: "start_date", Label: "Дата начала", Type: editor.FieldText},
		{Key: "end_date", Label: "Дата окончания", Type: editor.FieldText},
		{Key: "total_days", Label: "Дней", Type: editor.FieldNumber, ReadOnly: true},
		{Key: "total_price", Label: "Стоимость", Type: editor.FieldNumber, ReadOnly: true},
		{Key: "status", Label: "Статус", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: string(models.BookingStatusPending), Label: "Ожидает"},
			{Value: string(models.BookingStatusConfirmed), Label: "Подтверждено"},
			{Value: string(models.BookingStatusActive), Label: "Активно"},
			{Value: string(models.BookingStatusCompleted), Label: "Завершено"},
			{Value: string(models.BookingStatusCancelled), Label: "Отменено"},
		}},
		{Key: "pickup_location", Label: "Место выдачи", Type: editor.FieldText},
		{Key: "payment_status", Label: "Оплата", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: string(models.BookingPaymentPending), Label: "Не оплачено"},
			{Value: string(models.BookingPaymentPaid), Label: "Оплачено"},
			{Value: string(models.BookingPaymentRefunded), Label: "Возврат"},
		}},
	}
}

func MaintenanceFields(cars []models.Car) []editor.Field {
	return []editor.Field{
		{Key: "car_id", Label: "Автомобиль", Type: editor.FieldSelect, Options: CarOptions(cars)},
		{Key: "description", Label: "Описание работ", Type: editor.FieldText},
		{Key: "cost", Label: "Стоимость", Type: editor.FieldNumber},
		{Key: "date", Label: "Дата", Type: editor.FieldText},
		{Key: "mileage", Label: "Пробег", Type: editor.FieldNumber},
	}
}

func PaymentFields(clients []models.Client) []editor.Field {
	return []editor.Field{
		{Key: "booking_id", Label: "Бронирование", Type: editor.FieldNumber},
		{Key: "user_id", Label: "Клиент", Type: editor.FieldSelect, Options: ClientOptions(clients)},
		{Key: "amount", Label: "Сумма", Type: editor.FieldNumber},
		{Key: "status", Label: "Статус", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: string(models.PaymentStatusPending), Label: "Ожидает"},
			{Value: string(models.PaymentStatusCompleted), Label: "Завершён"},
			{Value: string(models.PaymentStatusFailed), Label: "Ошибка"},
			{Value: string(models.PaymentStatusRefunded), Label: "Возврат"},
		}},
		{Key: "card_last_digits", Label: "Последние цифры карты", Type: editor.FieldText},
		{Key: "transaction_id", Label: "Транзакция", Type: editor.FieldText, ReadOnly: true},
	}
}

func PointFields() []editor.Field {
	return []editor.Field{
		{Key: "address", Label: "Адрес", Type: editor.FieldText},
		{Key: "full_address", Label: "Полный адрес", Type: editor.FieldText},
		{Key: "latitude", Label: "Широта", Type: editor.FieldText},
		{Key: "longitude", Label: "Долгота", Type: editor.FieldText},
	}
}

func HijackingFields(clients []models.Client, cars []models.Car) []editor.Field {
	return []editor.Field{
		{Key: "description", Label: "Описание", Type: editor.FieldText},
		{Key: "user_id", Label: "Клиент", Type: editor.FieldSelect, Options: ClientOptions(clients)},
		{Key: "car_id", Label: "Автомобиль", Type: editor.FieldSelect, Options: CarOptions(cars)},
		{Key: "closed", Label: "Закрыто", Type: editor.FieldSelect, Options: []editor.Option{
			{Value: "false", Label: "Открыто"},
			{Value: "true", Label: "Закрыто"},
		}},
	}
}

func CommentFields(clients []models.Client) []editor.Field {
	return []editor.Field{
		{Key: "user_id", Label: "Клиент", Type: editor.FieldSelect, Options: ClientOptions(clients)},
		{Key: "comment", Label: "Комментарий", Type: editor.FieldText},
	}
}

func BackupFields() []editor.Field {
	return []editor.Field{
		{Key: "file_size", Label: "Размер файла", Type: editor.FieldNumber, ReadOnly: true},
		{Key: "save_folder", Label: "Папка", Type: editor.FieldText},
	}
}

// ClientOptions builds select options labelled by full name with email fallback.
func ClientOptions(clients []models.Client) []editor.Option {
	opts := make([]editor.Option, 0, len(clients))
	for _, c := range clients {
		label := c.FullName
		if label == "" {
			label = c.Email
		}
		opts = append(opts, editor.Option{
			Value: strconv.FormatInt(c.ID, 10),
			Label: label,
		})
	}
	return opts
}

// CarOptions builds select options labelled "Brand Model (plate)".
func CarOptions(cars []models.Car) []editor.Option {
	opts := make([]editor.Option, 0, len(cars))
	for _, c := range cars {
		opts = append(opts, editor.Option{
			Value: strconv.FormatInt(c.ID, 10),
			Label: fmt.Sprintf("%s %s (%s)", c.Brand, c.Model, c.LicensePlate),
		})
	}
	return opts
}

func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterCars narrows the list by a search query and an optional status.
// An empty status means all.
func FilterCars(cars []models.Car, query string, status models.CarStatus) []models.Car {
	var out []models.Car
	for _, c := range cars {
		if status != "" && c.Status != status {
			continue
		}
		if !matches(query, c.LicensePlate, c.Brand, c.Model, c.Color, c.Location) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func FilterClients(clients []models.Client, query string) []models.Client {
	var out []models.Client
	for _, c := range clients {
		if !matches(query, c.Username, c.Email, c.FullName, c.Phone) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func FilterBookings(bookings []models.Booking, status models.BookingStatus) []models.Booking {
	var out []models.Booking
	for _, b := range bookings {
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, b)
	}
	return out
}

func FilterPayments(payments []models.Payment, status models.PaymentStatus) []models.Payment {
	var out []models.Payment
	for _, p := range payments {
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out
}
