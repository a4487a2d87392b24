package graphql

// Schema is the gateway's GraphQL schema. Contact IDs on this surface
// are opaque node IDs; every field name is camelCase. The polymorphic
// results (ContactUnion, CreateContactPayload) present either a contact
// or a message-shaped error without failing the whole query.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	interface Node {
		id: ID!
	}

	enum ContactCategory {
		PERSONAL
		FAMILY
		BUSINESS
	}

	enum PhoneNumberType {
		WORK
		HOME
		MOBILE
	}

	type PhoneNumber {
		number: String!
		typeNumber: PhoneNumberType!
	}

	type ContactType implements Node {
		id: ID!
		name: String!
		category: ContactCategory!
		phoneNumbers: [PhoneNumber!]!
	}

	type ErrorType {
		message: String!
	}

	type DeleteContactPayload {
		message: String!
	}

	union ContactUnion = ContactType | ErrorType
	union CreateContactPayload = ContactType | ErrorType

	input PhoneNumberInput {
		number: String!
		typeNumber: PhoneNumberType!
	}

	input ContactQueryInput {
		contactId: ID!
	}

	input CreateContactInput {
		name: String!
		category: ContactCategory!
		phoneNumbers: [PhoneNumberInput!]!
	}

	input UpdateContactInput {
		id: ID!
		name: String
		category: ContactCategory
		phoneNumbers: [PhoneNumberInput!]
	}

	input DeleteContactInput {
		id: ID!
	}

	type Query {
		contacts: [ContactType!]!
		contact(input: ContactQueryInput!): ContactUnion!
		node(id: ID!): Node
	}

	type Mutation {
		createContact(input: CreateContactInput!): CreateContactPayload!
		updateContact(input: UpdateContactInput!): ContactUnion!
		deleteContact(input: DeleteContactInput!): DeleteContactPayload!
	}
`
