package mqtt

import "strings"

const (
	TopicSeparator = "/"

	// SingleLevelWildcard and MultiLevelWildcard are only valid in subscriptions, never in a topic that is written to.
	SingleLevelWildcard = "+"
	MultiLevelWildcard  = "#"
)

// TrimTopic trims TopicSeparator from the start and end of the specified topic.
func TrimTopic(topic string) string {
	return strings.Trim(topic, TopicSeparator)
}

// JoinTopic joins non-empty component parts with TopicSeparator, trimming each part as it is appended.
func JoinTopic(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = TrimTopic(part); part != "" {
			trimmed = append(trimmed, part)
		}
	}

	return strings.Join(trimmed, TopicSeparator)
}

// HasWildcard reports whether topic contains a subscription wildcard, which makes it unusable for publishing.
func HasWildcard(topic string) bool {
	return strings.ContainsAny(topic, SingleLevelWildcard+MultiLevelWildcard)
}
