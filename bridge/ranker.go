package bridge

import (
	"time"

	"golang.org/x/exp/slices"
)

const (
	TagBestPrice    = "best_price"
	TagFastest      = "fastest"
	TagMostReliable = "most_reliable"
)

// Rank drops expired quotes and orders the remainder by the requested
// priority. Sorting is stable and ties fall back to provider reliability and
// then provider name, so the same candidate set always produces the same
// order. ErrNoViableRoute is returned when every candidate has expired.
func Rank(quotes []*Quote, priority Priority) ([]*Quote, error) {
	now := time.Now()
	ranked := make([]*Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.Expired(now) {
			continue
		}

		ranked = append(ranked, q)
	}
	if len(ranked) == 0 && len(quotes) > 0 {
		return nil, ErrNoViableRoute
	}

	slices.SortStableFunc(ranked, func(a, b *Quote) int {
		if c := compareByPriority(a, b, priority); c != 0 {
			return c
		}
		if c := compareReliability(a, b); c != 0 {
			return c
		}
		return compareName(a, b)
	})
	return ranked, nil
}

func compareByPriority(a, b *Quote, priority Priority) int {
	switch priority {
	case PrioritySpeed:
		return int(a.EstimatedTime - b.EstimatedTime)
	case PriorityReliability:
		return compareReliability(a, b)
	default:
		// Cost ranks by total USD fees, cheapest first, with the net amount
		// received on the destination chain breaking ties.
		if c := compareFees(a, b); c != 0 {
			return c
		}
		return b.OutputAmount.Cmp(a.OutputAmount)
	}
}

func compareFees(a, b *Quote) int {
	switch {
	case a.Fees.TotalUSD < b.Fees.TotalUSD:
		return -1
	case a.Fees.TotalUSD > b.Fees.TotalUSD:
		return 1
	default:
		return 0
	}
}

func compareReliability(a, b *Quote) int {
	return ReliabilityScores[b.Provider] - ReliabilityScores[a.Provider]
}

func compareName(a, b *Quote) int {
	if a.Provider < b.Provider {
		return -1
	}
	if a.Provider > b.Provider {
		return 1
	}
	return 0
}

// Tag annotates the quotes that win each priority dimension.
func Tag(quotes []*Quote) {
	if len(quotes) == 0 {
		return
	}

	bestPrice, fastest, mostReliable := quotes[0], quotes[0], quotes[0]
	for _, q := range quotes[1:] {
		if cheaper(q, bestPrice) {
			bestPrice = q
		}
		if q.EstimatedTime < fastest.EstimatedTime {
			fastest = q
		}
		if ReliabilityScores[q.Provider] > ReliabilityScores[mostReliable.Provider] {
			mostReliable = q
		}
	}

	bestPrice.Tags = appendTag(bestPrice.Tags, TagBestPrice)
	fastest.Tags = appendTag(fastest.Tags, TagFastest)
	mostReliable.Tags = appendTag(mostReliable.Tags, TagMostReliable)
}

func cheaper(a, b *Quote) bool {
	if c := compareFees(a, b); c != 0 {
		return c < 0
	}
	return a.OutputAmount.Cmp(b.OutputAmount) > 0
}

func appendTag(tags []string, tag string) []string {
	if slices.Contains(tags, tag) {
		return tags
	}
	return append(tags, tag)
}
