package model

// SnapResult グリッド点1つに対する道路スナップの結果
// Snappedがnilの場合「近くに道路が見つからなかった」ことを表す（エラーではなくデータ）
// 入力グリッド点と同じ並び順・同じ長さで保持し、インデックス対応を崩さない
type SnapResult struct {
	Snapped *LatLng `json:"snapped"`
}

// Found 道路が見つかったかどうか
func (s SnapResult) Found() bool {
	return s.Snapped != nil
}

// ValidPoint 道路スナップに成功した点
// GridIndexは元のグリッド点列におけるインデックスで、
// フィルタ後もルート行とグリッド点の結合キーとして維持される
type ValidPoint struct {
	GridIndex int    `json:"grid_index"`
	Point     LatLng `json:"point"`
}
