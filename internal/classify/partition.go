package classify

import "foodsync/internal/model"

// Partitioner splits a raw feed into per-category buckets plus the rejected
// tobacco items. It is pure: no I/O, identical output for identical input.
type Partitioner struct {
	classifier *Classifier
}

func NewPartitioner(c *Classifier) *Partitioner {
	return &Partitioner{classifier: c}
}

// Partition walks the feed once. Every input item ends up in exactly one
// place: a bucket or the rejected list. Bucket order is first-seen label
// order and items keep their feed order within a bucket.
func (p *Partitioner) Partition(items []model.RawItem) ([]model.Bucket, []model.RejectedItem) {
	index := make(map[string]int)
	var buckets []model.Bucket
	var rejected []model.RejectedItem

	for _, item := range items {
		if IsTobacco(item.Title) {
			rejected = append(rejected, model.RejectedItem{Item: item, Reason: model.ReasonTobacco})
			continue
		}
		label := p.classifier.Categorize(item.Title)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, model.Bucket{Label: label})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}
	return buckets, rejected
}
