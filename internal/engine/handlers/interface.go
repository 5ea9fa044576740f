package handlers

import (
	"encoding/json"
	"errors"

	"realm-server/internal/domain"
	"realm-server/internal/systems"
	"realm-server/internal/teams"
)

var (
	// ErrNotFound - актор или цель исчезли между командой и её обработкой. Движок молчит.
	ErrNotFound = errors.New("not found")
	// ErrMalformed - payload не разбирается. Клиент получает error.
	ErrMalformed = errors.New("malformed payload")
)

// Events - куда хендлер пишет игровые сообщения
type Events interface {
	systems.Notifier
	// BroadcastChat рассылает сообщение чата всем
	BroadcastChat(msg domain.ChatMessage)
}

// Context передает хендлеру состояние мира.
// Мы передаем ссылки, чтобы хендлер мог менять состояние (мутировать данные).
type Context struct {
	*systems.Env

	Teams  *teams.Registry
	Chat   *domain.ChatLog
	Events Events
	Actor  *domain.Entity // Тот, кто выполняет команду
}

// Result - возвращает результат выполнения команды.
// Ошибка означает отказ без изменения состояния; её текст уходит актору.
type Result struct {
	Msg     string // Сообщение для всех (если не пусто)
	Changed bool   // Нужно разослать новый снимок
}

// HandlerFunc - это контракт для любой команды (MOVE, ATTACK, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}

// Changed - успешный ответ, меняющий видимое состояние
func Changed(msg string) Result {
	return Result{Msg: msg, Changed: true}
}
