package recognizer

import (
	"sort"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MuratKramin/nlp-hw1/internal/alias"
	"github.com/MuratKramin/nlp-hw1/internal/citenorm"
)

func scenarioDict() alias.Dict {
	return alias.Dict{
		15: {"НК РФ", "Налоговый кодекс РФ"},
		17: {"УК РФ"},
		22: {"КоАП РФ"},
	}
}

func mustCompile(t *testing.T, dict alias.Dict) *CompiledRecognizer {
	t.Helper()
	cr, err := Compile(dict)
	require.NoError(t, err)
	return cr
}

func refTuple(r ParsedRef) [4]string {
	deref := func(s *string) string {
		if s == nil {
			return "<nil>"
		}
		return *s
	}
	return [4]string{strconv.Itoa(r.LawID), deref(r.Article), deref(r.Point), deref(r.Subpoint)}
}

func tuples(refs []ParsedRef) [][4]string {
	out := make([][4]string, len(refs))
	for i, r := range refs {
		out[i] = refTuple(r)
	}
	return out
}

func TestRecognize_Scenario1_SubpointEnumerationBeforeLaw(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := tuples(Recognize("пп. 1, 2 и 3 п. 2 ст. 3 НК РФ", cr))
	want := [][4]string{
		{"15", "3", "2", "1"},
		{"15", "3", "2", "2"},
		{"15", "3", "2", "3"},
	}
	require.Equal(t, want, got)
}

func TestRecognize_Scenario2_LawBeforeComponents(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := tuples(Recognize("УК РФ, ст. 145, п. 2, подп. б", cr))
	want := [][4]string{{"17", "145", "2", "б"}}
	require.Equal(t, want, got)
}

func TestRecognize_Scenario3_PartBeforeLawNoSubpoint(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := tuples(Recognize("ч. 3, ст. 30.1 КоАП РФ", cr))
	want := [][4]string{{"22", "30.1", "3", "<nil>"}}
	require.Equal(t, want, got)
}

func TestRecognize_Scenario4_ArticleHyphenNotExpanded(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := tuples(Recognize("ст. 43.2-6 НК РФ", cr))
	want := [][4]string{{"15", "43.2-6", "<nil>", "<nil>"}}
	require.Equal(t, want, got)
}

func TestRecognize_Scenario5_SpecificityPruning(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := tuples(Recognize("в подпунктах а, б и в пункта 3.345, 23 в статье 66 НК РФ", cr))

	sort.Slice(got, func(i, j int) bool { return got[i][3] < got[j][3] || (got[i][3] == got[j][3] && got[i][2] < got[j][2]) })

	require.Len(t, got, 6)
	for _, row := range got {
		require.Equal(t, "15", row[0])
		require.Equal(t, "66", row[1])
		require.NotEqual(t, "<nil>", row[3], "bare records must be pruned: %v", row)
	}
}

func TestRecognize_Scenario6_MorphologicalTail(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := tuples(Recognize("в соответствии со ст. 5 Налогового кодекса РФ", cr))
	want := [][4]string{{"15", "5", "<nil>", "<nil>"}}
	require.Equal(t, want, got)
}

func TestRecognize_EmptyInput(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	require.Empty(t, Recognize("", cr))
}

func TestRecognize_NoCitations(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	require.Empty(t, Recognize("обычный текст без ссылок на законы", cr))
}

func TestRecognize_NoDuplicateTuples(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := Recognize("ст. 3 НК РФ, ст. 3 НК РФ", cr)

	seen := make(map[[4]string]bool)
	for _, r := range tuples(got) {
		require.False(t, seen[r], "duplicate tuple %v", r)
		seen[r] = true
	}
}

func TestRecognize_EveryLawIDIsInDict(t *testing.T) {
	dict := scenarioDict()
	cr := mustCompile(t, dict)
	got := Recognize("ст. 3 НК РФ, ст. 145 УК РФ, ст. 1 КоАП РФ", cr)
	require.NotEmpty(t, got)
	for _, r := range got {
		_, ok := dict[r.LawID]
		require.True(t, ok, "law_id %d not in dict", r.LawID)
	}
}

func TestRecognize_IdempotentOnNormalization(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	text := "ст.   43.2–6   НК  РФ"

	direct := tuples(Recognize(text, cr))
	normalized := tuples(Recognize(citenorm.Normalize(text), cr))
	require.Equal(t, direct, normalized)
}

func TestRecognize_ReorderingAliasesPreservesResultSet(t *testing.T) {
	d1 := alias.Dict{15: {"НК РФ", "Налоговый кодекс РФ"}}
	d2 := alias.Dict{15: {"Налоговый кодекс РФ", "НК РФ"}}

	cr1 := mustCompile(t, d1)
	cr2 := mustCompile(t, d2)

	text := "ст. 5 НК РФ"
	require.Equal(t, tuples(Recognize(text, cr1)), tuples(Recognize(text, cr2)))
}

func TestRecognize_AliasInsideLargerWordDoesNotMatch(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	require.Empty(t, Recognize("ТНК владеет заводом, ст. 5 не указана", cr))
}

func TestRecognize_LatinLookalikeInLawName(t *testing.T) {
	cr := mustCompile(t, scenarioDict())
	got := Recognize("ст. 5 HK РФ", cr)
	require.NotEmpty(t, got)
	require.Equal(t, 15, got[0].LawID)
}

func TestExpandValue_NumericBareRange(t *testing.T) {
	require.Equal(t, []string{"1", "2", "3"}, ExpandValue("1-3", true))
}

func TestExpandValue_CyrillicLetterRange(t *testing.T) {
	require.Equal(t, []string{"а", "б", "в"}, ExpandValue("а-в", true))
}

func TestExpandValue_LatinLetterRange(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, ExpandValue("a-c", true))
}

func TestExpandValue_LeftDottedRightBareRange(t *testing.T) {
	require.Equal(t, []string{"43.2", "43.3", "43.4", "43.5", "43.6"}, ExpandValue("43.2-6", true))
}

func TestExpandValue_ArticleHyphenNeverExpands(t *testing.T) {
	require.Equal(t, []string{"43.2-6"}, ExpandValue("43.2-6", false))
}

func TestExpandValue_SingleLetterConnectorWordIsAValue(t *testing.T) {
	require.Equal(t, []string{"и"}, ExpandValue("и", true))
}

func TestExpandValue_Empty(t *testing.T) {
	require.Nil(t, ExpandValue("", true))
}

func TestExpandValue_DeduplicatesPreservingOrder(t *testing.T) {
	require.Equal(t, []string{"1", "2"}, ExpandValue("1, 2, 1", true))
}
