package scenario

import evict "github.com/krisalay/policy-cache/eviction"

func put(k, v string) Op { return Op{Kind: Put, Key: k, Value: v} }
func get(k string) Op    { return Op{Kind: Get, Key: k} }

var printOp = Op{Kind: Print}

// Reference returns the walkthrough used to demonstrate each policy with a capacity of 4.
func Reference(t evict.PolicyType) []Op {
	switch t {
	case evict.Basic:
		return []Op{
			printOp,
			put("A", "Hello"), put("B", "World"), put("C", "Holberton"),
			printOp,
			get("A"), get("B"), get("C"), get("D"),
			printOp,
			put("D", "School"), put("E", "Battery"), put("A", "Street"),
			printOp,
			get("A"),
		}
	case evict.FIFO:
		return []Op{
			put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
			printOp,
			put("E", "Battery"),
			printOp,
			put("C", "Street"),
			printOp,
			put("F", "Mission"),
			printOp,
		}
	case evict.LIFO:
		return []Op{
			put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
			printOp,
			put("E", "Battery"),
			printOp,
			put("C", "Street"),
			printOp,
			put("F", "Mission"),
			printOp,
			put("G", "San Francisco"),
			printOp,
		}
	case evict.LRU:
		return []Op{
			put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
			printOp,
			get("B"),
			put("E", "Battery"),
			printOp,
			put("C", "Street"),
			printOp,
			get("A"), get("B"), get("C"),
			put("F", "Mission"), printOp,
			put("G", "San Francisco"), printOp,
			put("H", "H"), printOp,
			put("I", "I"), printOp,
			put("J", "J"), printOp,
			put("K", "K"), printOp,
		}
	case evict.LFU:
		return []Op{
			put("A", "Hello"), put("B", "World"), put("C", "Holberton"), put("D", "School"),
			printOp,
			get("B"),
			put("E", "Battery"),
			printOp,
			put("C", "Street"),
			printOp,
			get("A"), get("B"), get("C"),
			put("F", "Mission"), printOp,
			put("G", "San Francisco"), printOp,
			put("H", "H"), printOp,
			put("I", "I"), printOp,
			get("I"), get("H"), get("I"), get("H"), get("I"), get("H"),
			put("J", "J"), printOp,
			put("K", "K"), printOp,
			put("L", "L"), printOp,
			put("M", "M"), printOp,
		}
	default:
		return nil
	}
}
