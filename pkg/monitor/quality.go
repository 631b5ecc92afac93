package monitor

import (
	"strings"

	"github.com/Makhuta/arr-monitor-manager/pkg/arr"
	"github.com/Makhuta/arr-monitor-manager/pkg/configstore"
)

// QualityInfo is the quality metadata of one download or imported file,
// normalized from either a webhook payload or a fetched file resource.
type QualityInfo struct {
	Score       int
	FormatNames []string
}

// QualityFromFormats builds QualityInfo from a custom format score and the
// matched format tags. Unnamed formats are dropped.
func QualityFromFormats(score int, formats []arr.CustomFormat) QualityInfo {
	q := QualityInfo{Score: score}
	for _, cf := range formats {
		if cf.Name == "" {
			continue
		}
		q.FormatNames = append(q.FormatNames, cf.Name)
	}
	return q
}

// ShouldUnmonitor decides whether an item of the given quality should stop
// being monitored under the configuration's thresholds. The two criteria are
// independent and either alone is sufficient: a configured score threshold
// that the score meets, or a configured format name contained
// case-insensitively in any applied format tag. With neither criterion
// configured the answer is always false.
func ShouldUnmonitor(quality QualityInfo, cfg configstore.Configuration) bool {
	if cfg.QualityScore != nil && quality.Score >= *cfg.QualityScore {
		return true
	}

	if cfg.FormatName != "" {
		want := strings.ToLower(cfg.FormatName)
		for _, name := range quality.FormatNames {
			if strings.Contains(strings.ToLower(name), want) {
				return true
			}
		}
	}

	return false
}
