package cdspy

// The static helper lives in its own file: a file containing //export
// directives may not define C functions in its preamble.

/*
#include "ndspy.h"

extern PtDspyError ndspyRenderProgress(PtDspyImageHandle image, float progress);

static PtDspyRenderProgressFuncPtr ndspyProgressFuncPtr(void) {
	return ndspyRenderProgress;
}
*/
import "C"

func renderProgressFunc() C.PtDspyRenderProgressFuncPtr {
	return C.ndspyProgressFuncPtr()
}
