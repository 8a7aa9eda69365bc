// internal/core/domain/enums_test.go
package domain

import (
	"testing"

	"shabnam/internal/platform/errors"
	"shabnam/internal/testutil"
)

func TestParseApproach(t *testing.T) {
	tests := []struct {
		input string
		want  Approach
		ok    bool
	}{
		{"fast", ApproachFast, true},
		{"SLOW", ApproachSlow, true},
		{" fast ", ApproachFast, true},
		{"medium", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseApproach(tt.input)
			if !tt.ok {
				testutil.AssertTrue(t, errors.Is(err, errors.ErrApproachRequired), "unknown approach")
				return
			}
			testutil.AssertNoError(t, err, "ParseApproach")
			testutil.AssertEqual(t, got, tt.want, "approach")
		})
	}
}

func TestApproach_Title(t *testing.T) {
	testutil.AssertEqual(t, ApproachFast.Title(), "Fast", "fast title")
	testutil.AssertEqual(t, ApproachSlow.Title(), "Slow", "slow title")
	testutil.AssertEqual(t, Approach("").Title(), "", "empty title")
}

func TestBucket(t *testing.T) {
	tests := []struct {
		bucket  Bucket
		result  string
		urlList string
		codes   string
		label   string
	}{
		{BucketAlive, "alive_subs.txt", "alive_subs_url.txt", "200", "alive"},
		{BucketRedirecting, "redirecting_subs.txt", "redirecting_subs_url.txt", "301,302", "redirect"},
		{BucketForbidden, "forbidden_subs.txt", "forbidden_subs_url.txt", "403", "forbidden"},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			testutil.AssertEqual(t, tt.bucket.ResultName(), tt.result, "result name")
			testutil.AssertEqual(t, tt.bucket.URLListName(), tt.urlList, "url list name")
			testutil.AssertEqual(t, tt.bucket.MatchCodes(), tt.codes, "match codes")
			testutil.AssertEqual(t, tt.bucket.Label(), tt.label, "label")
		})
	}

	testutil.AssertEqual(t, Bucket("other").MatchCodes(), "", "unknown bucket has no codes")
}

func TestMergeMode_IsValid(t *testing.T) {
	testutil.AssertTrue(t, MergeExternal.IsValid(), "external")
	testutil.AssertTrue(t, MergeNative.IsValid(), "native")
	testutil.AssertFalse(t, MergeMode("python").IsValid(), "unknown")
}
