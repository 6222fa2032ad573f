package key

import "runtime"

// Convention describes the modifier display convention of the host
// platform. It is passed explicitly into FromEvent rather than
// queried ambiently, so tests can simulate any platform.
type Convention struct {
	// SwapCtrlMeta reports the physical Ctrl key as Meta and vice
	// versa. This is the macOS convention, where Cmd takes the role
	// Ctrl plays elsewhere.
	SwapCtrlMeta bool
}

// DetectConvention returns the convention for the running OS.
func DetectConvention() Convention {
	return Convention{SwapCtrlMeta: runtime.GOOS == "darwin"}
}

// apply normalizes a modifier mask according to the convention.
func (c Convention) apply(mods Modifier) Modifier {
	if !c.SwapCtrlMeta {
		return mods
	}
	swapped := mods.Without(ModCtrl).Without(ModMeta)
	if mods.HasCtrl() {
		swapped = swapped.With(ModMeta)
	}
	if mods.HasMeta() {
		swapped = swapped.With(ModCtrl)
	}
	return swapped
}
