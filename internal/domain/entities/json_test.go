package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingItemUnmarshalJSON_AddonNameAliases(t *testing.T) {
	var items []PricingItem
	raw := `[
		{"type":"addon","name":"Radon","price":75,"serviceId":"s-1","addOnName":"Radon"},
		{"type":"addon","name":"Mold","price":40,"serviceId":"s-1","addonName":"Mold"},
		{"type":"service","name":"Home","price":150}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	require.Len(t, items, 3)

	assert.Equal(t, "Radon", items[0].AddonName)
	assert.Equal(t, "Mold", items[1].AddonName)
	assert.Empty(t, items[2].AddonName)
	assert.Equal(t, 40.0, items[1].Price)
	assert.Equal(t, PricingItemAddon, items[1].Type)

	out, err := json.Marshal(items[1])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"addOnName":"Mold"`)
}

func TestRequestedAddonUnmarshalJSON_AcceptsCamelCase(t *testing.T) {
	var a RequestedAddon
	require.NoError(t, json.Unmarshal([]byte(`{"serviceId":"s-1","addOnName":"Pool","addFee":30,"status":"approved"}`), &a))

	assert.Equal(t, "Pool", a.AddonName)
	assert.Equal(t, 30.0, a.AddFee)
	assert.Equal(t, RequestedAddonApproved, a.Status)
}

func TestAddOnRuleUnmarshalJSON_AcceptsLegacyName(t *testing.T) {
	var d DiscountCode
	raw := `{"code":"X","type":"percent","value":10,"active":true,"appliesToAddOns":[{"service":"s-1","addonName":"Radon"},{"service":"s-2","addOnName":"Mold"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &d))

	require.Len(t, d.AppliesToAddOns, 2)
	assert.Equal(t, AddOnRule{ServiceID: "s-1", AddonName: "Radon"}, d.AppliesToAddOns[0])
	assert.Equal(t, AddOnRule{ServiceID: "s-2", AddonName: "Mold"}, d.AppliesToAddOns[1])
}
