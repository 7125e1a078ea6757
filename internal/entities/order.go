package entities

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"
	"strings"
	"time"
)

type Status string

const (
	StatusPending        Status = "tertunda"
	StatusConfirmed      Status = "dikonfirmasi"
	StatusProcessing     Status = "sedang_diproses"
	StatusReadyForPickup Status = "siap_diambil"
	StatusCompleted      Status = "selesai"
	StatusCancelled      Status = "dibatalkan"
)

// Statuses lists every accepted order status. Any status may follow any other.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusProcessing,
	StatusReadyForPickup,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	return slices.Contains(Statuses, s)
}

// AllowedStatuses renders Statuses as a comma separated list for error messages.
func AllowedStatuses() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

const (
	keyOrderID             = "orderId"
	keyItems               = "items"
	keyCustomerPhoneNumber = "customerPhoneNumber"
	keyStatus              = "status"
	keyReceivedAt          = "receivedAt"
	keyLastUpdatedAt       = "lastUpdatedAt"
)

// Order is an open record: the fields below are the ones the service reads,
// everything else the client sent is kept in Extra and echoed back untouched.
type Order struct {
	OrderID             string
	Items               []json.RawMessage
	CustomerPhoneNumber *string
	Status              Status
	ReceivedAt          time.Time
	LastUpdatedAt       time.Time

	Extra map[string]json.RawMessage
}

func (o Order) Clone() Order {
	c := o
	c.Items = slices.Clone(o.Items)
	c.Extra = maps.Clone(o.Extra)
	if o.CustomerPhoneNumber != nil {
		phone := *o.CustomerPhoneNumber
		c.CustomerPhoneNumber = &phone
	}
	return c
}

// UnmarshalJSON reads a client supplied order. receivedAt and lastUpdatedAt
// belong to the server and are dropped.
func (o *Order) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return errors.New("order must be a JSON object")
	}

	*o = Order{}
	if v, ok := raw[keyOrderID]; ok {
		if err := decodeField(keyOrderID, v, &o.OrderID); err != nil {
			return err
		}
	}
	if v, ok := raw[keyItems]; ok {
		if err := decodeField(keyItems, v, &o.Items); err != nil {
			return err
		}
	}
	if v, ok := raw[keyCustomerPhoneNumber]; ok {
		if err := decodeField(keyCustomerPhoneNumber, v, &o.CustomerPhoneNumber); err != nil {
			return err
		}
	}
	if v, ok := raw[keyStatus]; ok {
		if err := decodeField(keyStatus, v, &o.Status); err != nil {
			return err
		}
	}

	for _, k := range []string{keyOrderID, keyItems, keyCustomerPhoneNumber, keyStatus, keyReceivedAt, keyLastUpdatedAt} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		o.Extra = raw
	}
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Extra)+6)
	for k, v := range o.Extra {
		out[k] = v
	}

	items := o.Items
	if items == nil {
		items = []json.RawMessage{}
	}
	out[keyOrderID] = o.OrderID
	out[keyItems] = items
	out[keyCustomerPhoneNumber] = o.CustomerPhoneNumber
	out[keyStatus] = o.Status
	out[keyReceivedAt] = o.ReceivedAt
	out[keyLastUpdatedAt] = o.LastUpdatedAt
	return json.Marshal(out)
}

func decodeField(key string, data json.RawMessage, dst any) error {
	err := json.Unmarshal(data, dst)
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) && te.Field == "" {
		te.Field = key
	}
	return err
}
