package commands

// LocateDeclaration exports locateDeclaration for testing.
var LocateDeclaration = locateDeclaration //nolint:gochecknoglobals // test export

// FindRepositoryDirectory exports findRepositoryDirectory for testing.
var FindRepositoryDirectory = findRepositoryDirectory //nolint:gochecknoglobals // test export

// BuildOverrideBlock exports buildOverrideBlock for testing.
var BuildOverrideBlock = buildOverrideBlock //nolint:gochecknoglobals // test export

// AppendOverride exports appendOverride for testing.
var AppendOverride = appendOverride //nolint:gochecknoglobals // test export

// Mentions exports mentions for testing.
var Mentions = mentions //nolint:gochecknoglobals // test export
