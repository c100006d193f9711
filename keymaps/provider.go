package keymaps

import "strings"

// KeyMappingProvider provides key mappings for different keyboard types
type KeyMappingProvider struct {
	mappings map[int]KeyMapping
}

// NewKeyMappingProvider creates an empty mapping provider
func NewKeyMappingProvider() *KeyMappingProvider {
	return &KeyMappingProvider{
		mappings: map[int]KeyMapping{},
	}
}

// CreateDefaultKeyMappingProvider creates and returns a provider with all default mappings
func CreateDefaultKeyMappingProvider() *KeyMappingProvider {
	provider := NewKeyMappingProvider()

	// Register all available mappings
	RegisterMacropadKeyMapping(provider)
	RegisterLaptopKeyMapping(provider)
	RegisterNumpadKeyMapping(provider)

	return provider
}

// GetMapping returns the key mapping for the specified keyboard type
func (p *KeyMappingProvider) GetMapping(keyboardType int) KeyMapping {
	mapping, exists := p.mappings[keyboardType]
	if !exists {
		// Default to the macropad if type not found
		return p.mappings[KBD_TYPE_MACROPAD]
	}
	return mapping
}

// RegisterMapping registers a new key mapping for a specific keyboard type
func (p *KeyMappingProvider) RegisterMapping(keyboardType int, mapping KeyMapping) {
	p.mappings[keyboardType] = mapping
}

// GetKeyboardType determines the keyboard type based on device name
func GetKeyboardType(deviceName string) int {
	switch {
	case deviceName == "AT Translated Set 2 keyboard":
		return KBD_TYPE_LAPTOP
	case strings.Contains(strings.ToLower(deviceName), "keypad"),
		strings.Contains(strings.ToLower(deviceName), "numpad"):
		return KBD_TYPE_NUMPAD
	default:
		return KBD_TYPE_MACROPAD
	}
}
