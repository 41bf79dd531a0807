package intent

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ParsedOrder
	}{
		{
			name:  "empty",
			input: "",
			want:  ParsedOrder{},
		},
		{
			name:  "whitespace only",
			input: "  \t\n ",
			want:  ParsedOrder{},
		},
		{
			name:  "spanish followers with handle",
			input: "1k instagram seguidores @username",
			want: ParsedOrder{
				Quantity:        intPtr(1000),
				Platform:        Instagram,
				ServiceType:     Followers,
				Target:          "@username",
				MatchPercentage: 100,
			},
		},
		{
			name:  "url digits ignored",
			input: "1000 followers https://instagram.com/user123",
			want: ParsedOrder{
				Quantity:        intPtr(1000),
				Platform:        Instagram,
				ServiceType:     Followers,
				Target:          "https://instagram.com/user123",
				MatchPercentage: 100,
			},
		},
		{
			name:  "company compound",
			input: "500 company followers linkedin",
			want: ParsedOrder{
				Quantity:        intPtr(500),
				Platform:        LinkedIn,
				ServiceType:     CompanyFollowers,
				MatchPercentage: 82,
			},
		},
		{
			name:  "url preferred over handle",
			input: "1k likes https://tiktok.com/@a @b",
			want: ParsedOrder{
				Quantity:        intPtr(1000),
				Platform:        TikTok,
				ServiceType:     Likes,
				Target:          "https://tiktok.com/@a",
				MatchPercentage: 100,
			},
		},
		{
			name:  "quantity and service only",
			input: "2.5M views",
			want: ParsedOrder{
				Quantity:        intPtr(2500000),
				ServiceType:     Views,
				MatchPercentage: 50,
			},
		},
		{
			name:  "target only keeps casing",
			input: "  @MixedCase  ",
			want: ParsedOrder{
				Target:          "@MixedCase",
				MatchPercentage: 18,
			},
		},
		{
			name:  "punctuation only",
			input: "?!.,;",
			want:  ParsedOrder{},
		},
		{
			name:  "unsupported script",
			input: "こんにちは世界",
			want:  ParsedOrder{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.input))
		})
	}
}

func TestParseReferenceExamples(t *testing.T) {
	assert.Equal(t, 1000, Parse("1k followers").QuantityValue())
	assert.Equal(t, 2500000, Parse("2.5m views").QuantityValue())
	assert.Equal(t, 500, Parse("500 likes").QuantityValue())
	assert.Equal(t, 1000, Parse("1000 followers https://instagram.com/user123").QuantityValue())

	order := Parse("1000 seguidores instagram @x")
	assert.Equal(t, Followers, order.ServiceType)
	assert.Equal(t, Instagram, order.Platform)

	assert.Equal(t, CompanyFollowers, Parse("500 company followers linkedin").ServiceType)
	assert.Equal(t, "https://tiktok.com/@a", Parse("1k likes https://tiktok.com/@a @b").Target)
	assert.Equal(t, 0, Parse("").MatchPercentage)
	assert.Equal(t, "UNKNOWNSLUG", GetPlatformDisplayName("unknownslug"))
	assert.Equal(t, "Followers", GetServiceTypeDisplayName("followers"))
}

func TestParseIgnoresCaseExceptTarget(t *testing.T) {
	inputs := []string{
		"1K Instagram FOLLOWERS @SomeUser",
		"2.5M YouTube Views https://YouTube.com/Watch?v=Q",
		"500 Company Followers LinkedIn",
		"ME GUSTA 300 TikTok",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			orig := Parse(input)
			lower := Parse(strings.ToLower(input))

			assert.Equal(t, lower.Quantity, orig.Quantity)
			assert.Equal(t, lower.Platform, orig.Platform)
			assert.Equal(t, lower.ServiceType, orig.ServiceType)
			assert.Equal(t, lower.MatchPercentage, orig.MatchPercentage)
			assert.True(t, strings.EqualFold(lower.Target, orig.Target))
			if orig.HasTarget() {
				assert.Contains(t, input, orig.Target)
			}
		})
	}
}

func TestParseScoreMonotonic(t *testing.T) {
	base := Parse("followers")
	withQuantity := Parse("100 followers")
	withPlatform := Parse("100 followers instagram")
	withTarget := Parse("100 followers instagram @someone")

	assert.LessOrEqual(t, base.MatchPercentage, withQuantity.MatchPercentage)
	assert.LessOrEqual(t, withQuantity.MatchPercentage, withPlatform.MatchPercentage)
	assert.LessOrEqual(t, withPlatform.MatchPercentage, withTarget.MatchPercentage)
	assert.Equal(t, 100, withTarget.MatchPercentage)
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"\x00\xff\xfe",
		strings.Repeat("9", 400),
		strings.Repeat("@", 100),
		"https://",
		"1.k",
		"k m",
		".5m",
		"1e9 likes",
		strings.Repeat("instagram followers ", 500),
	}
	for _, input := range inputs {
		require.NotPanics(t, func() {
			order := Parse(input)
			assert.GreaterOrEqual(t, order.MatchPercentage, 0)
			assert.LessOrEqual(t, order.MatchPercentage, 100)
		})
	}
}

func TestParserReady(t *testing.T) {
	p := Default()

	assert.True(t, p.Ready(p.Parse("1k instagram followers"), DefaultPreviewThreshold))
	assert.True(t, p.Ready(p.Parse("1k followers"), DefaultPreviewThreshold))
	assert.False(t, p.Ready(p.Parse("instagram"), DefaultPreviewThreshold))
	assert.False(t, p.Ready(p.Parse(""), 1))
	assert.True(t, p.Ready(p.Parse(""), 0))
}

func TestParserWithSubsetDictionary(t *testing.T) {
	d, err := NewDictionary(KeywordMapping{
		Platforms:    map[string]Platform{"instagram": Instagram},
		ServiceTypes: map[string]ServiceType{"followers": Followers, "likes": Likes},
	}, DisplayNameMapping{})
	require.NoError(t, err)
	p := NewParser(d)

	order := p.Parse("1000 seguidores tiktok")
	assert.Equal(t, 1000, order.QuantityValue())
	assert.False(t, order.HasPlatform())
	assert.False(t, order.HasServiceType())
	assert.Equal(t, 25, order.MatchPercentage)

	// compound detection does not depend on the dictionary
	assert.Equal(t, CompanyFollowers, p.Parse("company followers").ServiceType)
	assert.Equal(t, "INSTAGRAM", p.PlatformDisplayName("instagram"))
}

func TestParseConcurrent(t *testing.T) {
	p := Default()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				order := p.Parse("1k instagram seguidores @username")
				if order.MatchPercentage != 100 {
					t.Errorf("MatchPercentage = %d, want 100", order.MatchPercentage)
					return
				}
			}
		}()
	}
	wg.Wait()
}
