package domain

import "encoding/json"

// InternalCommand - команда для движка.
// Актор определяется по сессии: игрок привязывается к ней командой create.
type InternalCommand struct {
	Action  ActionType
	Session string          // ID соединения-источника
	Payload json.RawMessage // Сырые данные (парсятся хендлером)
}
