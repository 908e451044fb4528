package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uap-go/uaparser/core"
)

func strp(s string) *string { return &s }

func TestPartialResult_Complete_RequiresAll(t *testing.T) {
	r := core.PartialResult{Requested: core.DomainUserAgent, String: "ua"}
	_, err := r.Complete()
	require.ErrorIs(t, err, core.ErrIncompleteRequest)
}

func TestPartialResult_Complete_Succeeds(t *testing.T) {
	r := core.PartialResult{
		Requested: core.DomainAll,
		UserAgent: &core.UserAgent{Family: "Chrome"},
		String:    "ua",
	}
	res, err := r.Complete()
	require.NoError(t, err)
	assert.Equal(t, "Chrome", res.UserAgent.Family)
	assert.Nil(t, res.OS)
	assert.Nil(t, res.Device)
}

func TestPartialResult_WithDefaults_EmptyUA(t *testing.T) {
	r := core.PartialResult{Requested: core.DomainAll, String: ""}
	d := r.WithDefaults()
	assert.Equal(t, core.OtherFamily, d.UserAgent.Family)
	assert.Equal(t, core.OtherFamily, d.OS.Family)
	assert.Equal(t, core.OtherFamily, d.Device.Family)
	assert.Nil(t, d.UserAgent.Major)
	assert.Equal(t, "", d.String)
}

func TestPartialResult_WithDefaults_NotRequestedAlsoDefaults(t *testing.T) {
	// WithDefaults never errors, unlike Complete: a facet that was never
	// requested defaults the same as one that was requested and missed.
	r := core.PartialResult{Requested: core.DomainUserAgent, String: "ua"}
	d := r.WithDefaults()
	assert.Equal(t, core.OtherFamily, d.OS.Family)
}

func TestPartialResult_WithDefaults_PreservesMatchedFacets(t *testing.T) {
	r := core.PartialResult{
		Requested: core.DomainAll,
		UserAgent: &core.UserAgent{Family: "Chrome", Major: strp("41")},
		OS:        &core.OS{Family: "Mac OS X"},
		Device:    &core.Device{Family: "Mac"},
		String:    "some-ua",
	}
	d := r.WithDefaults()
	assert.Equal(t, "Chrome", d.UserAgent.Family)
	assert.Equal(t, "41", *d.UserAgent.Major)
	assert.Equal(t, "Mac OS X", d.OS.Family)
	assert.Equal(t, "Mac", d.Device.Family)
	assert.Equal(t, "some-ua", d.String)
}

func TestDefaultedResult_ShortIdentifier(t *testing.T) {
	d := core.DefaultedResult{
		UserAgent: core.UserAgent{Family: "Chrome", Major: strp("41"), Minor: strp("0")},
		OS:        core.OS{Family: "Mac OS X"},
		Device:    core.Device{Family: "Mac"},
	}
	assert.Equal(t, "Chrome/41.0 (Mac OS X; Mac)", d.ShortIdentifier())
}

func TestDefaultedResult_ShortIdentifier_AllOther(t *testing.T) {
	d := core.PartialResult{Requested: core.DomainAll, String: ""}.WithDefaults()
	assert.Equal(t, core.OtherFamily, d.ShortIdentifier())
}

func TestResult_WithDefaults(t *testing.T) {
	r := core.Result{UserAgent: &core.UserAgent{Family: "Firefox"}, String: "x"}
	d := r.WithDefaults()
	assert.Equal(t, "Firefox", d.UserAgent.Family)
	assert.Equal(t, core.OtherFamily, d.OS.Family)
}
