package models

// Card is the persisted form of a credit card.
type Card struct {
	CardID     string `db:"card_id"`
	OwnerID    string `db:"owner_id"`
	Name       string `db:"name"`
	ClosingDay int    `db:"closing_day"`
	AuditFields
}
