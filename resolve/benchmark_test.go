package resolve_test

import (
	"testing"

	"github.com/uap-go/uaparser/cache"
	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/match"
	"github.com/uap-go/uaparser/resolve"
)

const benchmarkUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

func buildBenchRuleSet(b *testing.B) *match.RuleSet {
	b.Helper()
	rs, err := match.NewRuleSet(match.Records{
		UserAgent: []match.UserAgentRecord{
			{Regex: `Firefox/(\d+)\.(\d+)`},
			{Regex: `Chrome/(\d+)\.(\d+)\.(\d+)\.(\d+)`},
		},
		OS: []match.OSRecord{
			{Regex: `Mac OS X (\d+)_(\d+)_(\d+)`, FamilyReplace: "Mac OS X"},
			{Regex: `Windows NT (\d+)\.(\d+)`, FamilyReplace: "Windows"},
		},
		Device: []match.DeviceRecord{
			{Regex: `iPhone`, RegexFlag: "i", FamilyReplace: "iPhone"},
			{Regex: `SM-(\w+)`, FamilyReplace: "Samsung $1", BrandReplace: "Samsung", ModelReplace: "$1"},
		},
	})
	if err != nil {
		b.Fatal(err)
	}
	return rs
}

func BenchmarkBasic_Resolve(b *testing.B) {
	r := resolve.NewBasic(buildBenchRuleSet(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve(benchmarkUA, core.DomainAll)
	}
}

func BenchmarkRegexSet_Resolve(b *testing.B) {
	r := resolve.NewRegexSet(buildBenchRuleSet(b))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve(benchmarkUA, core.DomainAll)
	}
}

func BenchmarkCaching_Resolve_AllHits(b *testing.B) {
	r := resolve.NewCaching(resolve.NewBasic(buildBenchRuleSet(b)), cache.NewLRU[string, core.PartialResult](64))
	r.Resolve(benchmarkUA, core.DomainAll) // warm the cache

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Resolve(benchmarkUA, core.DomainAll)
	}
}
