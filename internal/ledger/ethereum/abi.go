// Package ethereum implements the ledger gateway against the e-waste tracker
// contract and the reward token contract.
package ethereum

// trackerABI covers the subset of the EwasteTracker contract this service
// uses: the item counter, per-item reads and the two write methods with
// their emitted events.
const trackerABI = `[
  {"type":"function","name":"itemCounter","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getItem","stateMutability":"view","inputs":[{"name":"id","type":"uint256"}],"outputs":[{"name":"id","type":"uint256"},{"name":"user","type":"address"},{"name":"itemType","type":"string"},{"name":"location","type":"string"},{"name":"timestamp","type":"uint256"},{"name":"status","type":"uint8"}]},
  {"type":"function","name":"submitItem","stateMutability":"nonpayable","inputs":[{"name":"itemType","type":"string"},{"name":"location","type":"string"}],"outputs":[]},
  {"type":"function","name":"verifyItem","stateMutability":"nonpayable","inputs":[{"name":"id","type":"uint256"}],"outputs":[]},
  {"type":"event","name":"ItemSubmitted","anonymous":false,"inputs":[{"name":"id","type":"uint256","indexed":false},{"name":"user","type":"address","indexed":false}]},
  {"type":"event","name":"ItemVerified","anonymous":false,"inputs":[{"name":"id","type":"uint256","indexed":false},{"name":"verifier","type":"address","indexed":false}]}
]`

// erc20ABI is the read-only slice of the reward token contract.
const erc20ABI = `[
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`
