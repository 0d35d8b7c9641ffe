package models

// Address is the saved checkout form: field name -> entered value
// (fullName, address, phone, and optionally whatsapp, email, locationTag).
// Persisted as-is under the "mounifull.address" key prefix and used to
// prefill the checkout form; it never expires on its own.
type Address map[string]string
