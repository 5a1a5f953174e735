package service

import (
	"fmt"
	"math"

	"TurnSeq-App/internal/domain/model"
)

// AlternationFraction ダブルターン列のうち左右が入れ替わるトークン（LR・RL）の割合を返す
// 空の入力は量が定義できないためエラー（0や NaN にはしない）
// 定義外のトークンが混入していた場合は上流の契約違反としてエラー
func AlternationFraction(doubleTurns []model.DoubleTurn) (float64, error) {
	if len(doubleTurns) == 0 {
		return 0, model.ErrEmptyDoubleTurns
	}

	alternating := 0
	for _, dt := range doubleTurns {
		if !dt.IsValid() {
			return 0, fmt.Errorf("%w (値: %q)", model.ErrInvalidDoubleTurn, dt)
		}
		if dt.Alternating() {
			alternating++
		}
	}

	return float64(alternating) / float64(len(doubleTurns)), nil
}

// SummarizeRoutes 経路ごとの交替率を集計して要約統計を作る
// ダブルターンが1つもない経路（曲がりが1回以下）は集計対象から除外する
// 集計対象が1件もない場合はエラー（平均が定義できない）
func SummarizeRoutes(routes []model.RouteEntry) (mean, stdDev, ciLower, ciUpper float64, usable int, err error) {
	var fractions []float64
	for _, route := range routes {
		if len(route.DoubleTurns) == 0 {
			continue
		}
		fraction, ferr := AlternationFraction(route.DoubleTurns)
		if ferr != nil {
			return 0, 0, 0, 0, 0, fmt.Errorf("経路(%d→%d)の交替率計算に失敗: %w",
				route.OriginIndex, route.DestinationIndex, ferr)
		}
		fractions = append(fractions, fraction)
	}

	if len(fractions) == 0 {
		return 0, 0, 0, 0, 0, fmt.Errorf("集計可能な経路がありません: %w", model.ErrEmptyDoubleTurns)
	}

	n := float64(len(fractions))
	var sum float64
	for _, f := range fractions {
		sum += f
	}
	mean = sum / n

	var sqSum float64
	for _, f := range fractions {
		d := f - mean
		sqSum += d * d
	}
	stdDev = math.Sqrt(sqSum / n)

	// 95%信頼区間（Student-t分布）
	// 標本が1件のときは区間が定義できないため平均の退化区間を返す
	if len(fractions) < 2 {
		return mean, stdDev, mean, mean, len(fractions), nil
	}
	sem := math.Sqrt(sqSum/(n-1)) / math.Sqrt(n)
	t := tCritical95(len(fractions) - 1)
	return mean, stdDev, mean - t*sem, mean + t*sem, len(fractions), nil
}

// 両側95%のt臨界値（自由度1〜30の表引き、それ以上は正規近似）
var tTable95 = []float64{
	12.706, 4.303, 3.182, 2.776, 2.571, 2.447, 2.365, 2.306, 2.262, 2.228,
	2.201, 2.179, 2.160, 2.145, 2.131, 2.120, 2.110, 2.101, 2.093, 2.086,
	2.080, 2.074, 2.069, 2.064, 2.060, 2.056, 2.052, 2.048, 2.045, 2.042,
}

func tCritical95(df int) float64 {
	if df < 1 {
		return math.NaN()
	}
	if df <= len(tTable95) {
		return tTable95[df-1]
	}
	return 1.960
}
