package constants

// Фиксированные словари документа. Коды хранятся в БД, подписи
// отдаются наружу (история изменений, уведомления).

const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusPending    = "pending"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	ChannelPhone    = "phone"
	ChannelEmail    = "email"
	ChannelChat     = "chat"
	ChannelTelegram = "telegram"
	ChannelViber    = "viber"
)

const (
	RequestTypeBug       = "bug"
	RequestTypeFeature   = "feature"
	RequestTypeQuestion  = "question"
	RequestTypeAccess    = "access"
	RequestTypeComplaint = "complaint"
)

// Подписи полей в истории изменений.
const (
	HistoryFieldStatus     = "Status"
	HistoryFieldDepartment = "Department"
)

// Подпись для документа без департамента.
const UnassignedLabel = "unassigned"

var StatusLabels = map[string]string{
	StatusNew:        "Новий",
	StatusInProgress: "В роботі",
	StatusPending:    "Очікування",
	StatusResolved:   "Вирішено",
	StatusClosed:     "Зачинено",
}

var ChannelLabels = map[string]string{
	ChannelPhone:    "Телефон",
	ChannelEmail:    "Email",
	ChannelChat:     "Чат бот",
	ChannelTelegram: "Telegram",
	ChannelViber:    "Viber",
}

var RequestTypeLabels = map[string]string{
	RequestTypeBug:       "Помилка ПЗ",
	RequestTypeFeature:   "Новий функціонал",
	RequestTypeQuestion:  "Консультація",
	RequestTypeAccess:    "Надання доступу",
	RequestTypeComplaint: "Скарга",
}

func IsValidStatus(code string) bool {
	_, ok := StatusLabels[code]
	return ok
}

func IsValidChannel(code string) bool {
	_, ok := ChannelLabels[code]
	return ok
}

func IsValidRequestType(code string) bool {
	_, ok := RequestTypeLabels[code]
	return ok
}

// StatusLabel возвращает подпись статуса; для неизвестного кода — сам код.
func StatusLabel(code string) string {
	if label, ok := StatusLabels[code]; ok {
		return label
	}
	return code
}

func ChannelLabel(code string) string {
	if label, ok := ChannelLabels[code]; ok {
		return label
	}
	return code
}

func RequestTypeLabel(code string) string {
	if label, ok := RequestTypeLabels[code]; ok {
		return label
	}
	return code
}
