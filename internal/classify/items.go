package classify

import (
	"fmt"

	"github.com/Invisble-man/path-ai-sub000/internal/store"
)

// BuildItems turns extracted candidate lines into requirement records with
// ordinal ids. AUTO_RESOLVED items start done: they need no user decision.
func BuildItems(lines []string) []*store.Item {
	items := make([]*store.Item, 0, len(lines))
	for i, line := range lines {
		res := Classify(line)
		items = append(items, &store.Item{
			ID:          fmt.Sprintf("R%03d", i+1),
			Text:        line,
			Bucket:      BucketFor(line),
			GatingLabel: res.Label,
			Confidence:  res.Confidence,
			Status:      store.StatusUnknown,
			Done:        res.Label == store.LabelAutoResolved,
		})
	}
	return items
}
