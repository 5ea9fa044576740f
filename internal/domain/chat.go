package domain

// ChatMessage - сообщение чата, как его видит клиент
type ChatMessage struct {
	Channel    string   `json:"channel"`
	SenderID   string   `json:"senderId"`
	SenderTeam string   `json:"senderTeam,omitempty"`
	Text       string   `json:"text"`
	Timestamp  string   `json:"timestamp"`
	Location   Position `json:"location"`
	TargetID   string   `json:"targetId,omitempty"`
}

// ChatLog - кольцевой буфер последних сообщений
type ChatLog struct {
	limit    int
	messages []ChatMessage
}

func NewChatLog(limit int) *ChatLog {
	return &ChatLog{limit: limit, messages: make([]ChatMessage, 0, limit)}
}

// Append добавляет сообщение, выталкивая самое старое при переполнении
func (c *ChatLog) Append(msg ChatMessage) {
	c.messages = append(c.messages, msg)
	if len(c.messages) > c.limit {
		c.messages = c.messages[len(c.messages)-c.limit:]
	}
}

// Messages возвращает копию буфера
func (c *ChatLog) Messages() []ChatMessage {
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}
