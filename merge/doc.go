// Package merge overrides and injects the fields of one plain object into
// another.
//
// [Override] and [Inject] work on a single level. [Override] only replaces
// keys that base already has; [Inject] also adds the keys base lacks.
//
// [DeepOverride] and [DeepInject] broadcast: the same patch is applied to
// every nested object of base, not to the sub-object found at the same
// path. Given
//
//	base  := {"enabled": true, "child": {"enabled": true, "name": "x"}}
//	patch := {"enabled": false}
//
// DeepOverride(base, patch) sets "enabled" to false at both levels. A
// patch key that names a nested object replaces that object wholesale.
//
// Deep operations stop after [DefaultMaxDepth] levels; objects below the
// bound are copied unchanged. Use a [Merger] to pick another bound or to
// log when the bound is reached.
//
// Every function returns a fresh deep copy. Arguments are never modified.
package merge
