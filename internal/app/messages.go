package app

import "carshare/internal/hooks"

// Тексты уведомлений для каждой сущности.
var (
	carMessages = hooks.Messages{
		Creating: "Создание автомобиля...", Created: "Автомобиль создан", CreateFailed: "Ошибка создания автомобиля",
		Updating: "Обновление автомобиля...", Updated: "Автомобиль обновлён", UpdateFailed: "Ошибка обновления автомобиля",
		Deleting: "Удаление автомобиля...", Deleted: "Автомобиль удалён", DeleteFailed: "Ошибка удаления автомобиля",
	}

	clientMessages = hooks.Messages{
		Creating: "Создание клиента...", Created: "Клиент создан", CreateFailed: "Ошибка создания клиента",
		Updating: "Обновление клиента...", Updated: "Клиент обновлён", UpdateFailed: "Ошибка обновления клиента",
		Deleting: "Удаление клиента...", Deleted: "Клиент удалён", DeleteFailed: "Ошибка удаления клиента",
	}

	bookingMessages = hooks.Messages{
		Creating: "Создание бронирования...", Created: "Бронирование создано", CreateFailed: "Ошибка создания бронирования",
		Updating: "Обновление бронирования...", Updated: "Бронирование обновлено", UpdateFailed: "Ошибка обновления бронирования",
		Deleting: "Удаление бронирования...", Deleted: "Бронирование удалено", DeleteFailed: "Ошибка удаления бронирования",
	}

	maintenanceMessages = hooks.Messages{
		Creating: "Создание записи ТО...", Created: "Запись ТО создана", CreateFailed: "Ошибка создания записи ТО",
		Updating: "Обновление записи ТО...", Updated: "Запись ТО обновлена", UpdateFailed: "Ошибка обновления записи ТО",
		Deleting: "Удаление записи ТО...", Deleted: "Запись ТО удалена", DeleteFailed: "Ошибка удаления записи ТО",
	}

	paymentMessages = hooks.Messages{
		Creating: "Создание платежа...", Created: "Платёж создан", CreateFailed: "Ошибка создания платежа",
		Updating: "Обновление платежа...", Updated: "Платёж обновлён", UpdateFailed: "Ошибка обновления платежа",
		Deleting: "Удаление платежа...", Deleted: "Платёж удалён", DeleteFailed: "Ошибка удаления платежа",
	}

	pointMessages = hooks.Messages{
		Creating: "Создание пункта проката...", Created: "Пункт проката создан", CreateFailed: "Ошибка создания пункта проката",
		Updating: "Обновление пункта проката...", Updated: "Пункт проката обновлён", UpdateFailed: "Ошибка обновления пункта проката",
		Deleting: "Удаление пункта проката...", Deleted: "Пункт проката удалён", DeleteFailed: "Ошибка удаления пункта проката",
	}

	hijackingMessages = hooks.Messages{
		Creating: "Создание записи об угоне...", Created: "Запись об угоне создана", CreateFailed: "Ошибка создания записи об угоне",
		Updating: "Обновление записи об угоне...", Updated: "Запись об угоне обновлена", UpdateFailed: "Ошибка обновления записи об угоне",
		Deleting: "Удаление записи об угоне...", Deleted: "Запись об угоне удалена", DeleteFailed: "Ошибка удаления записи об угоне",
	}

	commentMessages = hooks.Messages{
		Creating: "Создание комментария...", Created: "Комментарий создан", CreateFailed: "Ошибка создания комментария",
		Updating: "Обновление комментария...", Updated: "Комментарий обновлён", UpdateFailed: "Ошибка обновления комментария",
		Deleting: "Удаление комментария...", Deleted: "Комментарий удалён", DeleteFailed: "Ошибка удаления комментария",
	}

	backupMessages = hooks.Messages{
		Creating: "Создание резервной копии...", Created: "Резервная копия создана", CreateFailed: "Ошибка создания резервной копии",
		Updating: "Обновление резервной копии...", Updated: "Резервная копия обновлена", UpdateFailed: "Ошибка обновления резервной копии",
		Deleting: "Удаление резервной копии...", Deleted: "Резервная копия удалена", DeleteFailed: "Ошибка удаления резервной копии",
	}
)
