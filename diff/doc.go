// Copyright 2024 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package diff computes the differences between two sequences or two map-like
// collections, for use by collection matchers.
//
// Sequences are compared element by element with one of two order
// disciplines:
//
//   - Strict: the sequences must agree position by position for the order to
//     be preserved.
//   - Relative: the elements of `expected` must appear in `actual` in the same
//     relative order; other elements of `actual` are ignored.
//
// In both cases duplicate elements are matched one instance at a time, so if
// `actual` holds two copies of X and `expected` holds one, exactly one X is
// reported as extra.
//
// Maps are partitioned into common, extra, missing and different-value
// entries. When both maps have a meaningful key order (see MapLike), their
// key sequences can additionally be compared with one of the disciplines
// above.
//
// Everything in this package is synchronous and allocates fresh results per
// call.
package diff
