package repository

import (
	"os"
	"sort"
	"strings"
	"time"

	"supplier_report/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func normalizePaging(page, size, defaultSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultSize
	}
	return page, size
}

func paginate(payments []entities.Payment, page, size int) []entities.Payment {
	start := (page - 1) * size
	if start >= len(payments) {
		return []entities.Payment{}
	}
	end := start + size
	if end > len(payments) {
		end = len(payments)
	}
	return append([]entities.Payment(nil), payments[start:end]...)
}

// sortPaymentsNewestFirst orders by payment day, then creation time, then id.
func sortPaymentsNewestFirst(payments []entities.Payment) {
	sort.SliceStable(payments, func(i, j int) bool {
		a, b := payments[i], payments[j]
		if c := compareTimes(a.PaymentDate, b.PaymentDate); c != 0 {
			return c > 0
		}
		if c := compareTimes(a.CreatedAt, b.CreatedAt); c != 0 {
			return c > 0
		}
		return a.ID > b.ID
	})
}

// compareTimes orders nil before any time.
func compareTimes(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

func phoneDigits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
