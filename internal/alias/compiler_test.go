package alias

import (
	"strings"
	"testing"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/require"
)

func testDict() Dict {
	return Dict{
		15: {"НК РФ", "Налоговый кодекс РФ"},
		17: {"УК РФ"},
		22: {"КоАП РФ", "КоАП"},
	}
}

func mustMatch(t *testing.T, pattern, text string) *regexp2.Match {
	t.Helper()
	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	require.NoError(t, err)
	m, err := re.FindStringMatch(text)
	require.NoError(t, err)
	return m
}

func TestCompile_ResolvesNativeSpelling(t *testing.T) {
	c, err := Compile(testDict())
	require.NoError(t, err)

	m := mustMatch(t, c.LawNamed, "см. НК РФ")
	require.NotNil(t, m)

	found := false
	for name, id := range c.GroupToLawID {
		g := m.GroupByName(name)
		if g != nil && g.Length > 0 {
			require.Equal(t, 15, id)
			found = true
		}
	}
	require.True(t, found, "expected LID_15 group to participate in the match")
}

func TestCompile_LatinLookalikeResolvesSameLawID(t *testing.T) {
	c, err := Compile(testDict())
	require.NoError(t, err)

	// Latin H and K standing in for Cyrillic Н and К.
	m := mustMatch(t, c.LawNamed, "HK РФ")
	require.NotNil(t, m)
}

func TestCompile_AliasInsideLargerWordDoesNotMatch(t *testing.T) {
	c, err := Compile(testDict())
	require.NoError(t, err)

	re, err := regexp2.Compile(c.LawNamed, regexp2.IgnoreCase)
	require.NoError(t, err)
	m, err := re.FindStringMatch("ТНК владеет заводом")
	require.NoError(t, err)
	require.Nil(t, m, "alias should not match inside a larger word")
}

func TestCompile_MorphologicalTailOnAdjective(t *testing.T) {
	c, err := Compile(testDict())
	require.NoError(t, err)

	m := mustMatch(t, c.LawNamed, "Налогового кодекса РФ")
	require.NotNil(t, m)
}

func TestCompile_NonCapTwinHasNoNamedGroups(t *testing.T) {
	c, err := Compile(testDict())
	require.NoError(t, err)

	_, err = regexp2.Compile(c.LawNonCap, regexp2.IgnoreCase)
	require.NoError(t, err)

	for id := range c.GroupToLawID {
		require.NotContains(t, c.LawNonCap, "<"+id+">")
	}
}

func TestCompile_ReorderingAliasesDoesNotChangeWhatMatches(t *testing.T) {
	d1 := Dict{15: {"НК РФ", "Налоговый кодекс РФ"}}
	d2 := Dict{15: {"Налоговый кодекс РФ", "НК РФ"}}

	c1, err := Compile(d1)
	require.NoError(t, err)
	c2, err := Compile(d2)
	require.NoError(t, err)

	for _, text := range []string{"см. НК РФ", "см. Налогового кодекса РФ"} {
		m1 := mustMatch(t, c1.LawNamed, text)
		m2 := mustMatch(t, c2.LawNamed, text)
		require.Equal(t, m1 != nil, m2 != nil, "text %q", text)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	d, err := Load(strings.NewReader(`{"15": ["Налоговый кодекс РФ", "НК РФ", "НК"], "22": ["КоАП РФ", "КоАП"]}`))
	require.NoError(t, err)
	require.Equal(t, []string{"Налоговый кодекс РФ", "НК РФ", "НК"}, []string(d[15]))
	require.Equal(t, []int{15, 22}, d.LawIDs())
}

func TestLoad_RejectsEmpty(t *testing.T) {
	_, err := Load(strings.NewReader(`{}`))
	require.Error(t, err)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`not json`))
	require.Error(t, err)
}
