package catalog

// Badge is granted when the user's collection reaches Threshold distinct
// creatures. The set is fixed at build time, like the creature table; the
// client owns the artwork.
type Badge struct {
	ID          string
	Name        string
	NameEN      string
	Description string
	Threshold   int64
}

var badges = []Badge{
	{ID: "badge-001", Name: "위대한 여정의 첫걸음", NameEN: "First Steps", Description: "동물을 1개 발견했습니다", Threshold: 1},
	{ID: "badge-003", Name: "바다 달인", NameEN: "Sea Adept", Description: "동물을 3개 발견했습니다", Threshold: 3},
	{ID: "badge-005", Name: "바다 장인", NameEN: "Sea Artisan", Description: "동물을 5개 발견했습니다", Threshold: 5},
	{ID: "badge-009", Name: "여긴 이제 내 바다야", NameEN: "My Ocean Now", Description: "동물을 9개 발견했습니다", Threshold: 9},
	{ID: "badge-011", Name: "바다의 왕자", NameEN: "Prince of the Sea", Description: "동물을 11개 발견했습니다", Threshold: 11},
}

func (Catalog) Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

func (Catalog) GetBadge(id string) (Badge, bool) {
	for _, b := range badges {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
