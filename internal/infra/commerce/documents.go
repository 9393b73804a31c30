package commerce

// GraphQL documents for the commerce backend. Mutations write restaurant
// and delivery state as order metadata; the backend owns the order itself.

const restaurantOrderQueueQuery = `
query RestaurantOrderQueue($channel: String!, $status: [OrderStatusFilter!], $first: Int) {
  orders(channel: $channel, filter: { status: $status }, first: $first, sortBy: { field: CREATION_DATE, direction: DESC }) {
    edges {
      node {
        id
        number
        status
        created
        userEmail
        customerNote
        shippingMethodName
        total {
          gross {
            amount
            currency
          }
        }
        billingAddress {
          firstName
          lastName
          phone
        }
        shippingAddress {
          streetAddress1
          city
          postalCode
          phone
        }
        lines {
          productName
          variantName
          quantity
          unitPrice {
            gross {
              amount
              currency
            }
          }
        }
        metadata {
          key
          value
        }
        channel {
          id
          slug
        }
      }
    }
  }
}`

const updateDeliveryStatusMutation = `
mutation UpdateDeliveryStatus($orderId: ID!, $status: String!, $location: String!, $estimatedArrival: String!) {
  updateMetadata(
    id: $orderId
    input: [
      { key: "delivery_status", value: $status }
      { key: "delivery_location", value: $location }
      { key: "estimated_arrival", value: $estimatedArrival }
    ]
  ) {
    item {
      metadata {
        key
        value
      }
    }
    errors {
      field
      message
    }
  }
}`

const assignDeliveryDriverMutation = `
mutation AssignDeliveryDriver($orderId: ID!, $driverName: String!, $driverPhone: String!, $vehicleInfo: String!) {
  updateMetadata(
    id: $orderId
    input: [
      { key: "driver_name", value: $driverName }
      { key: "driver_phone", value: $driverPhone }
      { key: "vehicle_info", value: $vehicleInfo }
    ]
  ) {
    item {
      metadata {
        key
        value
      }
    }
    errors {
      field
      message
    }
  }
}`

const acceptRestaurantOrderMutation = `
mutation AcceptRestaurantOrder($orderId: ID!, $preparationTime: String!) {
  updateMetadata(
    id: $orderId
    input: [
      { key: "restaurant_status", value: "accepted" }
      { key: "preparation_time", value: $preparationTime }
    ]
  ) {
    item {
      metadata {
        key
        value
      }
    }
    errors {
      field
      message
    }
  }
}`

const rejectRestaurantOrderMutation = `
mutation RejectRestaurantOrder($orderId: ID!, $reason: String!) {
  updateMetadata(
    id: $orderId
    input: [
      { key: "restaurant_status", value: "rejected" }
      { key: "rejection_reason", value: $reason }
    ]
  ) {
    item {
      metadata {
        key
        value
      }
    }
    errors {
      field
      message
    }
  }
}`
