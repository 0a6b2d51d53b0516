package attacks

import (
	"context"
	"testing"

	"github.com/osse101/TornBot_Go/internal/torn"
)

const benchBase = 1_700_000_000

// mixedFeed builds n attacks by 25 attackers with every result kind, newest first
func mixedFeed(n int) []torn.Attack {
	results := []string{"Attacked", "Mugged", "Hospitalized", "Lost", "Assist"}
	out := make([]torn.Attack, 0, n)
	for i := n - 1; i >= 0; i-- {
		id := int64(i + 1)
		extra := map[string]any{}
		if i%5 == 1 {
			extra["money_mugged"] = 1000 * (i + 1)
		}
		out = append(out, item(id, int64(i%25+1), benchBase+int64(i)*10, results[i%len(results)], 1.5, extra))
	}
	return out
}

func BenchmarkNormalize(b *testing.B) {
	items := mixedFeed(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, it := range items {
			if _, err := Normalize(it); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkAggregateDaily(b *testing.B) {
	items := mixedFeed(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		AggregateDaily(benchBase, items)
	}
}

// BenchmarkSync_Incremental measures a sync where the store is already caught up
func BenchmarkSync_Incremental(b *testing.B) {
	ctx := context.Background()
	f := &feed{items: mixedFeed(500)}
	svc := NewService(newMemRepo(), f, DefaultConfig())
	if _, err := svc.Sync(ctx, "key"); err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Sync(ctx, "key"); err != nil {
			b.Fatal(err)
		}
	}
}
