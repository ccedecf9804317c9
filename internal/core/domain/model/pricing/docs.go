// Package pricing implements the delivery-fee policy: a tiered decision that
// turns a cart subtotal and an optional shop-to-customer distance into a
// DeliveryQuote. The thresholds live in Tariff so deployments can tune them;
// the evaluation itself is a pure function shared by order submission and any
// preview caller, which keeps the previewed and the billed fee identical for
// identical inputs.
package pricing
