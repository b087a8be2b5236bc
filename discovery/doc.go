// Package discovery contains constants and utilities for constructing Home Assistant MQTT Discovery Payloads. To
// minimize throughput to MQTT (and to minimize storage used for retained messages), the constants in this package map
// to the abbreviated forms. See the Home Assistant documentation for a full list of abbreviations.
//
// Entity descriptors describe their wire representation as a Fields table: an ordered list of Field values, each
// binding one abbreviated key to the Go value that holds it. Fields implements both json.MarshalerTo and
// json.UnmarshalerFrom, so a descriptor's (un)marshal methods are one line each. Tables may be concatenated, which is
// how availability configuration ends up at the top level of an entity payload instead of nested under a key.
//
// See https://www.home-assistant.io/integrations/mqtt/#supported-abbreviations-in-mqtt-discovery-messages for a full
// list of abbreviations.
package discovery
