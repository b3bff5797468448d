package poker

// HoleCardCategory represents the strength category of hole cards
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards buckets a two-card starting hand.
// Premium: JJ+, AK. Strong: TT, AQ, AJ. Medium: 77-99, suited broadway.
// Weak: 22-66, suited connectors and one-gappers. Trash: everything else.
func CategorizeHoleCards(hole []Card) HoleCardCategory {
	if len(hole) != 2 || hole[0].Validate() != nil || hole[1].Validate() != nil || hole[0] == hole[1] {
		return CategoryUnknown
	}

	low, high := hole[0].Rank, hole[1].Rank
	if low > high {
		low, high = high, low
	}
	suited := hole[0].Suit == hole[1].Suit
	pair := low == high

	switch {
	case pair && low >= Jack, low == King && high == Ace:
		return CategoryPremium
	case pair && low == Ten, high == Ace && (low == Queen || low == Jack):
		return CategoryStrong
	case pair && low >= Seven, suited && low >= Ten:
		return CategoryMedium
	case pair, suited && high-low <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}
