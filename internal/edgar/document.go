package edgar

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	documentSplitRe = regexp.MustCompile(`(?i)</DOCUMENT>`)
	docTypeRe       = regexp.MustCompile(`(?i)<TYPE>\s*([^\n<]+)`)
	docFilenameRe   = regexp.MustCompile(`(?i)<FILENAME>\s*([^\n<]+)`)
	docSequenceRe   = regexp.MustCompile(`(?i)<SEQUENCE>\s*(\d+)`)
)

type documentCandidate struct {
	docType  string
	filename string
	sequence int
	isHTML   bool
}

// PrimaryDocumentFilename finds the main filing document inside the full
// submission text. Submissions bundle several <DOCUMENT> blocks with <TYPE>
// and <FILENAME>; preferring the block whose type matches the form lets the
// report link straight to the 8-K itself instead of the directory listing.
// Amendments also accept the base form type.
func PrimaryDocumentFilename(submissionText, formType string) (string, bool) {
	if submissionText == "" {
		return "", false
	}

	desired := map[string]struct{}{strings.ToUpper(formType): {}}
	if base, ok := strings.CutSuffix(strings.ToUpper(formType), "/A"); ok {
		desired[base] = struct{}{}
	}

	var candidates []documentCandidate
	for _, block := range documentSplitRe.Split(submissionText, -1) {
		t := docTypeRe.FindStringSubmatch(block)
		fn := docFilenameRe.FindStringSubmatch(block)
		if t == nil || fn == nil {
			continue
		}

		sequence := 9999
		if seq := docSequenceRe.FindStringSubmatch(block); seq != nil {
			if n, err := strconv.Atoi(seq[1]); err == nil {
				sequence = n
			}
		}

		filename := strings.TrimSpace(fn[1])
		lower := strings.ToLower(filename)

		candidates = append(candidates, documentCandidate{
			docType:  strings.ToUpper(strings.TrimSpace(t[1])),
			filename: filename,
			sequence: sequence,
			isHTML:   strings.HasSuffix(lower, ".htm") || strings.HasSuffix(lower, ".html"),
		})
	}

	if len(candidates) == 0 {
		return "", false
	}

	rank := func(c documentCandidate) (int, int, int) {
		typeMatch := 1
		if _, ok := desired[c.docType]; ok {
			typeMatch = 0
		}
		htmlRank := 1
		if c.isHTML {
			htmlRank = 0
		}
		return typeMatch, htmlRank, c.sequence
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ti, hi, si := rank(candidates[i])
		tj, hj, sj := rank(candidates[j])
		if ti != tj {
			return ti < tj
		}
		if hi != hj {
			return hi < hj
		}
		return si < sj
	})

	return candidates[0].filename, true
}
