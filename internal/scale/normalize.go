package scale

import (
	"strings"
	"unicode"
)

// arabicTatweel is the kashida filler used after هـ in option markers.
const arabicTatweel = 'ـ'

// foldRune lowercases Latin letters and collapses Arabic alef variants so
// marker comparison is insensitive to case and hamza placement.
func foldRune(r rune) rune {
	switch r {
	case 'أ', 'إ', 'آ':
		return 'ا'
	}
	return unicode.ToLower(r)
}

// isMarkerSeparator reports whether r may follow a letter marker:
// punctuation, brackets or whitespace in either script.
func isMarkerSeparator(r rune) bool {
	switch r {
	case ')', '(', ']', '[', '.', '-', ':', ',', '،', '؛', '/', '\\':
		return true
	}
	return unicode.IsSpace(r)
}

// latinMarkers and arabicMarkers are position-aligned with letterCodes.
var (
	latinMarkers  = [5]rune{'a', 'b', 'c', 'd', 'e'}
	arabicMarkers = [5]rune{'ا', 'ب', 'ج', 'د', 'ه'}
)

// letterIndex finds a lettered option marker at the start of raw, after any
// leading whitespace or punctuation. A marker only counts when it is a lone
// letter: followed by a separator, an optional tatweel, or nothing at all,
// so "A) text" and "ب) نص" match but the word "Always" does not.
func letterIndex(raw string) (int, bool) {
	runes := []rune(raw)
	i := 0
	for i < len(runes) && (isMarkerSeparator(runes[i]) || runes[i] == '"' || runes[i] == '\'') {
		i++
	}
	if i >= len(runes) {
		return 0, false
	}
	letter := foldRune(runes[i])
	i++
	// هـ is conventionally written with a trailing tatweel.
	if i < len(runes) && runes[i] == arabicTatweel {
		i++
	}
	if i < len(runes) && !isMarkerSeparator(runes[i]) {
		return 0, false
	}
	for idx, m := range latinMarkers {
		if letter == m {
			return idx, true
		}
	}
	for idx, m := range arabicMarkers {
		if letter == m {
			return idx, true
		}
	}
	return 0, false
}

// tierFragments is the documented fallback for lettered answers that carry
// no marker: canonical phrase fragments per option tier, in both languages.
// The tiers are scanned in the fixed order below and the first hit wins,
// which keeps the fallback deterministic. The marker is always the primary
// path; this only catches descriptive free-text answers.
var tierFragments = []struct {
	tier      int
	fragments []string
}{
	{4, []string{"not applicable", "n/a", "لا ينطبق"}},
	{0, []string{"appropriately", "without help", "without assistance", "independently", "normally", "no difficulty", "بدون مساعدة", "بشكل طبيعي", "بمفرده", "دون مساعدة"}},
	{3, []string{"unable", "cannot", "fully dependent", "needs to be fed", "has to be", "غير قادر", "لا يستطيع", "يعتمد كليا"}},
	{2, []string{"step by step", "if prompted", "prompted", "supervision", "supervised", "خطوة بخطوة", "بإشراف", "تحت الإشراف", "إذا ذكر"}},
	{1, []string{"if ingredients", "needs some help", "some help", "occasionally", "with a little help", "بعض المساعدة", "مساعدة بسيطة", "أحيانا"}},
}

// foldText lowercases, folds alef variants, strips tatweel and Arabic
// diacritics, and collapses runs of whitespace so fragment matching
// tolerates formatting drift.
func foldText(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if r == arabicTatweel || unicode.In(r, unicode.Mn) {
			continue
		}
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteRune(' ')
		}
		space = false
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

func phraseTier(raw string) (int, bool) {
	folded := foldText(raw)
	if folded == "" {
		return 0, false
	}
	for _, t := range tierFragments {
		for _, f := range t.fragments {
			if strings.Contains(folded, foldText(f)) {
				return t.tier, true
			}
		}
	}
	return 0, false
}

// NormalizeLetter maps one BADL answer to its canonical code. Primary path
// is the letter marker in either script; fallback is tier phrase matching.
func NormalizeLetter(raw string) (int, bool) {
	if idx, ok := letterIndex(raw); ok {
		return letterCodes[idx], true
	}
	if tier, ok := phraseTier(raw); ok {
		return letterCodes[tier], true
	}
	return 0, false
}

// digitValue folds Western, Arabic-Indic and Eastern Arabic-Indic digits.
func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= '٠' && r <= '٩': // ٠-٩
		return int(r - '٠'), true
	case r >= '۰' && r <= '۹': // ۰-۹
		return int(r - '۰'), true
	}
	return 0, false
}

// NormalizeStage extracts the leading integer of a staging answer. The code
// is the integer itself; values outside the 1..7 stage range, or answers
// with no leading integer, are anomalies.
func NormalizeStage(raw string) (int, bool) {
	runes := []rune(raw)
	i := 0
	for i < len(runes) && (isMarkerSeparator(runes[i]) || runes[i] == '"' || runes[i] == '\'') {
		i++
	}
	val, seen := 0, false
	for ; i < len(runes); i++ {
		d, ok := digitValue(runes[i])
		if !ok {
			break
		}
		seen = true
		val = val*10 + d
		if val > 99 {
			break
		}
	}
	if !seen || val < 1 || val > 7 {
		return 0, false
	}
	return val, true
}

var (
	yesValues = []string{"yes", "y", "true", "نعم", "اجل"}
	noValues  = []string{"no", "n", "false", "لا", "كلا"}
)

// NormalizeBinary scores one depression-scale answer against the item's
// fixed scoring direction: answering in the scoring direction yields 1,
// the opposite yields 0, anything else is an anomaly.
func NormalizeBinary(dir Direction, raw string) (int, bool) {
	folded := foldText(strings.Trim(raw, " \t.,!،؛"))
	for _, v := range yesValues {
		if folded == foldText(v) {
			if dir == YesScoresOne {
				return 1, true
			}
			return 0, true
		}
	}
	for _, v := range noValues {
		if folded == foldText(v) {
			if dir == NoScoresOne {
				return 1, true
			}
			return 0, true
		}
	}
	return 0, false
}
