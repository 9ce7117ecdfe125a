package message

const (
	SenderUser   = "user"
	SenderSystem = "system"
)

func ValidSender(s string) bool {
	return s == SenderUser || s == SenderSystem
}

// Message is a stored chat message. Content is the censored text; the
// raw submission is never persisted. Timestamp and ProcessedAt are
// canonical ISO-8601 strings, so lexicographic order follows real time.
type Message struct {
	MessageID      string `gorm:"primaryKey;type:varchar(128)" json:"message_id"`
	SessionID      string `gorm:"type:varchar(128);not null;index:idx_messages_session" json:"session_id"`
	Content        string `gorm:"type:text;not null" json:"content"`
	Timestamp      string `gorm:"type:varchar(32);not null;index:idx_messages_timestamp" json:"timestamp"`
	Sender         string `gorm:"type:varchar(16);not null;check:sender IN ('user','system')" json:"sender"`
	WordCount      int    `gorm:"not null" json:"word_count"`
	CharacterCount int    `gorm:"not null" json:"character_count"`
	ProcessedAt    string `gorm:"type:varchar(32);not null" json:"processed_at"`
}

func (Message) TableName() string { return "messages" }

// View is the API representation: derived fields grouped under metadata.
type View struct {
	MessageID string   `json:"message_id"`
	SessionID string   `json:"session_id"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
	Sender    string   `json:"sender"`
	Metadata  Metadata `json:"metadata"`
}

type Metadata struct {
	WordCount      int    `json:"word_count"`
	CharacterCount int    `json:"character_count"`
	ProcessedAt    string `json:"processed_at"`
}

func (m Message) View() View {
	return View{
		MessageID: m.MessageID,
		SessionID: m.SessionID,
		Content:   m.Content,
		Timestamp: m.Timestamp,
		Sender:    m.Sender,
		Metadata: Metadata{
			WordCount:      m.WordCount,
			CharacterCount: m.CharacterCount,
			ProcessedAt:    m.ProcessedAt,
		},
	}
}
