package knowledge

import "github.com/lib/pq"

// FallbackAnswer is returned verbatim when no keyword matches a query.
const FallbackAnswer = "I'm not sure about that. Please contact the college office at 04935-257321 for more info."

// Entry is one FAQ row. Keywords are stored lowercased; matching is a
// substring containment test against the lowercased query, first entry
// in primary-key order wins.
type Entry struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Keywords pq.StringArray `gorm:"type:text[]" json:"keywords"`
	Answer   string         `gorm:"type:text;not null" json:"answer"`
	Category string         `gorm:"type:varchar(10)" json:"category"`
}

func (Entry) TableName() string {
	return "knowledge_base"
}
