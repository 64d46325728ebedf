package report

import "errors"

// ErrNoRenderer el servicio se construyó sin generador de documentos.
var ErrNoRenderer = errors.New("report: sin generador de PDF")
