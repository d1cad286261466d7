package storage

// Persisted state keys. KeyUsedItemsLegacy holds the pre-normalization
// recently-used list (array of raw legacy icon encodings); it is read
// once during migration and never written again.
const (
	KeyUsedItems       = "icons/recently-used"
	KeyUsedItemsLegacy = "emojis/recently-used"
	KeyColorPreset     = "icons/color-preset"
)
