package domain

// UserProfile holds per-user settings. The document id equals the user id
// and the document is created implicitly by the first merge-write.
// MonthlyBudget is a pointer so a cleared budget round-trips as an explicit
// null, not as zero.
type UserProfile struct {
	ID            string   `firestore:"-" json:"id"`
	Theme         string   `firestore:"theme" json:"theme"`
	MonthlyBudget *float64 `firestore:"monthlyBudget" json:"monthlyBudget"`
}
