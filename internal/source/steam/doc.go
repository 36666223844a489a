// Copyright Yamport Authors
// SPDX-License-Identifier: AGPL-3.0-only

// Package steam implements the clients used to export a Steam library and to
// resolve Steam app ids to IGDB game ids through the IGDB API.
package steam
