package style

import (
	"github.com/alexisbeaulieu97/headliner/internal/settings"
)

// Entry offsets in pixels for the translate-in animations.
const (
	FadeInOffset  = 20.0
	SlideUpOffset = 50.0
)

// Bounce loop parameters.
const (
	BounceRepeatDelay = 2.0
)

// BounceHeights are the vertical keyframes of the bounce loop, in pixels.
var BounceHeights = []float64{0, -10, 0}

// MotionState is one end of an entry transition.
type MotionState struct {
	Opacity float64
	Y       float64
}

// Loop describes a repeating keyframe animation.
type Loop struct {
	Y           []float64
	Infinite    bool
	RepeatDelay float64
}

// MotionProps are the animation parameters handed to the preview renderer.
type MotionProps struct {
	Initial  MotionState
	Animate  MotionState
	Duration float64
	Delay    float64
	Loop     *Loop
}

// EntryOffset returns the initial vertical offset of the entry animations.
// Only fade-in and slide-up translate; every other type reports false.
func EntryOffset(a settings.AnimationType) (float64, bool) {
	switch a {
	case settings.AnimationFadeIn:
		return FadeInOffset, true
	case settings.AnimationSlideUp:
		return SlideUpOffset, true
	default:
		return 0, false
	}
}

// Motion derives preview animation parameters. Every type fades in from
// opacity 0; fade-in and slide-up also translate, bounce adds a repeating
// loop. Typewriter reveal is driven separately by the typewriter scheduler.
func Motion(s settings.HeadlineSettings) MotionProps {
	props := MotionProps{
		Initial:  MotionState{Opacity: 0},
		Animate:  MotionState{Opacity: 1},
		Duration: s.AnimationDuration,
		Delay:    s.AnimationDelay,
	}

	switch s.AnimationType {
	case settings.AnimationFadeIn, settings.AnimationSlideUp:
		offset, _ := EntryOffset(s.AnimationType)
		props.Initial = MotionState{Opacity: 0, Y: offset}
	case settings.AnimationBounce:
		props.Loop = &Loop{
			Y:           append([]float64(nil), BounceHeights...),
			Infinite:    true,
			RepeatDelay: BounceRepeatDelay,
		}
	}

	return props
}

// AnimationClass names the looping effect classes the preview attaches.
func AnimationClass(a settings.AnimationType) string {
	switch a {
	case settings.AnimationGlow:
		return "animate-glow"
	case settings.AnimationShimmer:
		return "animate-shimmer shimmer-effect"
	default:
		return ""
	}
}

// AnimationShorthand renders the CSS animation shorthand for s, e.g.
// "fade-in 0.8s ease-in-out 0s".
func AnimationShorthand(s settings.HeadlineSettings) string {
	return string(s.AnimationType) + " " + Seconds(s.AnimationDuration) + " ease-in-out " + Seconds(s.AnimationDelay)
}

// Keyframes returns the keyframe body lines for a. Only fade-in, slide-up
// and glow define keyframes; bounce, shimmer and typewriter return nil and
// reference a keyframe name that the exported stylesheet does not define.
func Keyframes(a settings.AnimationType) []string {
	switch a {
	case settings.AnimationFadeIn, settings.AnimationSlideUp:
		offset, _ := EntryOffset(a)
		return []string{
			"from { opacity: 0; transform: translateY(" + Px(offset) + "); }",
			"to { opacity: 1; transform: translateY(0); }",
		}
	case settings.AnimationGlow:
		return []string{
			"0% { text-shadow: 0 0 5px currentColor; }",
			"100% { text-shadow: 0 0 20px currentColor, 0 0 30px currentColor; }",
		}
	default:
		return nil
	}
}
