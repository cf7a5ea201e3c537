package xano

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// InstanceDetails is assembled locally from the naming convention; the meta
// API has no per-instance detail endpoint.
type InstanceDetails struct {
	Name        string `json:"name"`
	Display     string `json:"display"`
	XanoDomain  string `json:"xano_domain"`
	RateLimit   bool   `json:"rate_limit"`
	MetaAPI     string `json:"meta_api"`
	MetaSwagger string `json:"meta_swagger"`
}

// ListInstances returns the instances associated with the account token.
func (c *Client) ListInstances(ctx context.Context) (json.RawMessage, error) {
	result, err := c.do(ctx, c.globalBase(), get("auth", "me"))
	if err != nil {
		return nil, err
	}
	instances := gjson.GetBytes(result, "instances")
	if !instances.Exists() {
		return nil, fmt.Errorf("auth/me response carries no instances field")
	}
	return envelope("instances", json.RawMessage(instances.Raw)), nil
}

// InstanceDetails resolves instance metadata without a network call.
func (c *Client) InstanceDetails(instance string) InstanceDetails {
	domain := c.InstanceDomain(instance)
	return InstanceDetails{
		Name:        instance,
		Display:     strings.ToUpper(strings.SplitN(instance, "-", 2)[0]),
		XanoDomain:  domain,
		RateLimit:   false,
		MetaAPI:     "https://" + domain + "/api:meta",
		MetaSwagger: "https://" + domain + "/apispec:meta?type=json",
	}
}
