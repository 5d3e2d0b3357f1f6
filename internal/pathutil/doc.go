// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil builds and splits dot-separated key paths.
//
// The primary type is [PathBuilder], which uses push/pop semantics to build
// paths incrementally during recursive traversal. The joined string is only
// materialized when [PathBuilder.String] is called.
//
// Use [Get] to obtain a pooled PathBuilder, and [Put] to return it:
//
//	path := pathutil.Get()
//	defer pathutil.Put(path)
//
//	path.Push("spec")
//	path.Push("replicas")
//	emit(path.String()) // "spec.replicas"
//	path.Pop()
//
// [Split] and [Join] convert between the string and segment forms. Key
// paths have no index syntax; sequences are never traversed.
package pathutil
