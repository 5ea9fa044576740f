package network

import (
	"sync"

	"realm-server/pkg/api"
	"realm-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// SubscriberBuffer - сколько сообщений может ждать в очереди одного соединения
const SubscriberBuffer = 256

// Broadcaster занимается только рассылкой сообщений подписчикам
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: SessionID -> Личный канал
	subscribers map[string]chan api.ServerMessage
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerMessage),
	}
}

// Register создает личный канал для сессии (одного websocket-соединения)
func (b *Broadcaster) Register(sessionID string) chan api.ServerMessage {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerMessage, SubscriberBuffer)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo отправляет сообщение конкретной сессии (Unicast).
// Возвращает false, если подписчика нет или его очередь полна.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerMessage) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[sessionID]
	if !ok {
		return false
	}
	return offer(sessionID, ch, msg)
}

// Broadcast отправляет всем
func (b *Broadcaster) Broadcast(msg api.ServerMessage) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		offer(id, ch, msg)
	}
}

// offer не блокирует движок: медленный клиент теряет сообщение
func offer(sessionID string, ch chan api.ServerMessage, msg api.ServerMessage) bool {
	select {
	case ch <- msg:
		return true
	default:
		logger.Log.WithFields(logrus.Fields{
			"component": "hub",
			"session":   sessionID,
			"type":      msg.Type,
		}).Warn("Subscriber channel full, message dropped")
		return false
	}
}

// HasSubscriber проверяет, подключена ли сессия
func (b *Broadcaster) HasSubscriber(sessionID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[sessionID]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
