// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build nofitz

package backend

// The fitz backend is excluded from nofitz builds; auto resolution
// falls through to the pure-Go backend.
