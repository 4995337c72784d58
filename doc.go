// Copyright 2016 Maarten Everts. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fermat implements Fermat's probabilistic primality test: a number
// n is probably prime if a^(n-1) = 1 (mod n) holds for a number of randomly
// drawn bases a in [1, n). For now, see fermat_test.go on how to use the
// library.
package fermat
