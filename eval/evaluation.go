// Package eval measures the quality of a classification output against
// ground truth using a confusion matrix.
//
// Labels are dense indices 0..n-1; items without ground truth (or without a
// result) carry the label -1 and are skipped. Per-label metrics return NaN
// for labels that never appear in the ground truth.
package eval

import "math"

// Ignored marks an item with no ground truth or no classification result.
const Ignored = -1

// Evaluation accumulates a confusion matrix over labeled items and derives
// the usual quality measurements from it.
type Evaluation struct {
	labels []string
	// confusion[result][truth] counts items of ground-truth label `truth`
	// classified as `result`.
	confusion [][]int
}

// New returns an empty evaluation over the given label names.
func New(labels ...string) *Evaluation {
	confusion := make([][]int, len(labels))
	for i := range confusion {
		confusion[i] = make([]int, len(labels))
	}
	return &Evaluation{labels: labels, confusion: confusion}
}

// Append accumulates one batch of (ground truth, result) label pairs. Both
// slices must have the same length; pairs containing Ignored are skipped.
func (e *Evaluation) Append(groundTruth, result []int) {
	for i := range groundTruth {
		gt, res := groundTruth[i], result[i]
		if gt == Ignored || res == Ignored {
			continue
		}
		e.confusion[res][gt]++
	}
}

// Labels returns the label names.
func (e *Evaluation) Labels() []string {
	return e.labels
}

// Count returns the number of items with ground-truth label truth that were
// classified as result.
func (e *Evaluation) Count(result, truth int) int {
	return e.confusion[result][truth]
}

func (e *Evaluation) hasGroundTruth(label int) bool {
	for i := range e.labels {
		if e.confusion[i][label] != 0 {
			return true
		}
	}
	return false
}

// Precision returns the number of true positives of the label divided by
// the sum of true and false positives, or NaN if the label has no ground
// truth at all.
func (e *Evaluation) Precision(label int) float64 {
	if !e.hasGroundTruth(label) {
		return math.NaN()
	}
	total := 0
	for i := range e.labels {
		total += e.confusion[label][i]
	}
	if total == 0 {
		return 0
	}
	return float64(e.confusion[label][label]) / float64(total)
}

// Recall returns the number of true positives of the label divided by the
// sum of true positives and false negatives, or NaN if the label has no
// ground truth at all.
func (e *Evaluation) Recall(label int) float64 {
	if !e.hasGroundTruth(label) {
		return math.NaN()
	}
	total := 0
	for i := range e.labels {
		total += e.confusion[i][label]
	}
	return float64(e.confusion[label][label]) / float64(total)
}

// F1Score returns the harmonic mean of Precision and Recall for the label.
func (e *Evaluation) F1Score(label int) float64 {
	p := e.Precision(label)
	r := e.Recall(label)
	if p == 0 && r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// IoU returns the intersection over union for the label: true positives
// divided by the sum of true positives, false positives and false negatives.
func (e *Evaluation) IoU(label int) float64 {
	total := 0
	for i := range e.labels {
		total += e.confusion[i][label]
		if i != label {
			total += e.confusion[label][i]
		}
	}
	if total == 0 {
		return math.NaN()
	}
	return float64(e.confusion[label][label]) / float64(total)
}

// Accuracy returns the fraction of items whose result matches the ground
// truth, over all items with ground truth.
func (e *Evaluation) Accuracy() float64 {
	sum, correct := 0, 0
	for i := range e.labels {
		for j := range e.labels {
			sum += e.confusion[i][j]
			if i == j {
				correct += e.confusion[i][j]
			}
		}
	}
	if sum == 0 {
		return math.NaN()
	}
	return float64(correct) / float64(sum)
}

// MeanF1Score averages F1Score over the labels that have ground truth.
func (e *Evaluation) MeanF1Score() float64 {
	return e.mean(e.F1Score)
}

// MeanIoU averages IoU over the labels that have ground truth.
func (e *Evaluation) MeanIoU() float64 {
	return e.mean(e.IoU)
}

func (e *Evaluation) mean(metric func(int) float64) float64 {
	sum, n := 0.0, 0
	for i := range e.labels {
		v := metric(i)
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}
