package economy

import (
	"context"
	"testing"

	"github.com/osse101/Outfitter_Go/internal/concurrency"
	"github.com/osse101/Outfitter_Go/internal/domain"
)

// Engine overhead over a zero-latency store: validation, pricing, locking and bookkeeping.

func BenchmarkBuySell(b *testing.B) {
	store := newMemStore(testItems()...)
	store.addCharacter(testChar, testOwner, 1_000_000)
	svc := NewService(store, memCatalog{store: store}, concurrency.NewLockManager())
	ctx := context.Background()
	items := []domain.LineItem{{ItemCode: codePotion, Count: 1}, {ItemCode: codeHelm, Count: 1}}

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := svc.Buy(ctx, testChar, testOwner, items); err != nil {
			b.Fatal(err)
		}
		if _, err := svc.Sell(ctx, testChar, testOwner, items); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEquipUnequip(b *testing.B) {
	store := newMemStore(testItems()...)
	store.addCharacter(testChar, testOwner, 0)
	store.setLine(testChar, codeSword, 1)
	svc := NewService(store, memCatalog{store: store}, concurrency.NewLockManager())
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := svc.Equip(ctx, testChar, testOwner, codeSword); err != nil {
			b.Fatal(err)
		}
		if _, err := svc.Unequip(ctx, testChar, testOwner, codeSword); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuy_ParallelCharacters(b *testing.B) {
	store := newMemStore(testItems()...)
	const characters = 64
	for id := int64(1); id <= characters; id++ {
		store.addCharacter(id, testOwner, 1_000_000_000)
	}
	svc := NewService(store, memCatalog{store: store}, concurrency.NewLockManager())
	items := []domain.LineItem{{ItemCode: codeFree, Count: 1}}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		ctx := context.Background()
		var id int64
		for pb.Next() {
			id = id%characters + 1
			if _, err := svc.Buy(ctx, id, testOwner, items); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
