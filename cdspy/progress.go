package cdspy

/*
#include "ndspy.h"
*/
import "C"

import (
	"log/slog"

	"github.com/gogpu/ndspy"
)

// ndspyRenderProgress is the function the renderer calls back with the
// overall render progress after asking for it with PkRenderProgressQuery.
// It runs on a renderer thread; keep it cheap.
//
//export ndspyRenderProgress
func ndspyRenderProgress(image C.PtDspyImageHandle, progress C.float) C.PtDspyError {
	ndspy.Logger().Debug("ndspy: render progress",
		slog.Uint64("image", uint64(uintptr(image))),
		slog.Float64("progress", float64(progress)),
	)
	return C.PkDspyErrorNone
}
