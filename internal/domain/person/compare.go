package person

import (
	"cmp"
	"slices"
)

// Compare は参加者の並び順を決める比較関数
// 登録イベント数の降順、同数なら姓・名の昇順（大文字小文字を区別）
func Compare(a, b *Person) (int, error) {
	if a == nil || b == nil {
		return 0, ErrPersonRequired
	}
	return compare(a, b), nil
}

func compare(a, b *Person) int {
	if c := cmp.Compare(b.EventCount(), a.EventCount()); c != 0 {
		return c
	}
	if c := cmp.Compare(a.LastName, b.LastName); c != 0 {
		return c
	}
	return cmp.Compare(a.FirstName, b.FirstName)
}

// SortByParticipation は Compare の順序でスライスをその場で並べ替える
// nil を含む場合は並べ替えずにエラーを返す
func SortByParticipation(persons []*Person) error {
	if slices.Contains(persons, nil) {
		return ErrPersonRequired
	}
	slices.SortStableFunc(persons, compare)
	return nil
}
