package commands

// SelectTargets exports selectTargets for testing.
var SelectTargets = selectTargets //nolint:gochecknoglobals // test export
