package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

func TestMotion(t *testing.T) {
	t.Parallel()

	cases := []struct {
		animation settings.AnimationType
		initialY  float64
		loop      bool
	}{
		{animation: settings.AnimationNone},
		{animation: settings.AnimationFadeIn, initialY: 20},
		{animation: settings.AnimationSlideUp, initialY: 50},
		{animation: settings.AnimationBounce, loop: true},
		{animation: settings.AnimationGlow},
		{animation: settings.AnimationShimmer},
		{animation: settings.AnimationTypewriter},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.animation), func(t *testing.T) {
			t.Parallel()
			s := settings.Default()
			s.AnimationType = tc.animation
			s.AnimationDuration = 1.5
			s.AnimationDelay = 0.25

			got := Motion(s)
			assert.Equal(t, MotionState{Opacity: 0, Y: tc.initialY}, got.Initial)
			assert.Equal(t, MotionState{Opacity: 1}, got.Animate)
			assert.Equal(t, 1.5, got.Duration)
			assert.Equal(t, 0.25, got.Delay)

			if !tc.loop {
				assert.Nil(t, got.Loop)
				return
			}
			require.NotNil(t, got.Loop)
			assert.Equal(t, []float64{0, -10, 0}, got.Loop.Y)
			assert.True(t, got.Loop.Infinite)
			assert.Equal(t, 2.0, got.Loop.RepeatDelay)
		})
	}
}

func TestAnimationClass(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "animate-glow", AnimationClass(settings.AnimationGlow))
	assert.Equal(t, "animate-shimmer shimmer-effect", AnimationClass(settings.AnimationShimmer))
	assert.Empty(t, AnimationClass(settings.AnimationFadeIn))
	assert.Empty(t, AnimationClass(settings.AnimationNone))
}

func TestKeyframes(t *testing.T) {
	t.Parallel()

	fade := Keyframes(settings.AnimationFadeIn)
	require.Len(t, fade, 2)
	assert.Contains(t, fade[0], "translateY(20px)")

	slide := Keyframes(settings.AnimationSlideUp)
	require.Len(t, slide, 2)
	assert.Contains(t, slide[0], "translateY(50px)")

	glow := Keyframes(settings.AnimationGlow)
	require.Len(t, glow, 2)
	assert.Contains(t, glow[1], "0 0 30px currentColor")

	for _, a := range []settings.AnimationType{settings.AnimationBounce, settings.AnimationShimmer, settings.AnimationTypewriter, settings.AnimationNone} {
		assert.Empty(t, Keyframes(a), a)
	}
}

func TestAnimationShorthand(t *testing.T) {
	t.Parallel()

	s := settings.Default()
	assert.Equal(t, "fade-in 0.8s ease-in-out 0s", AnimationShorthand(s))
}
