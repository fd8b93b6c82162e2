// Package sdv01 implements the rule family of the SDV0.1 project.
//
// SDV0.1 datasets carry the project attributes with the "_Bosch_SDV0.1" suffix and are
// matched on "Object ID". Rules are evaluated in the order the project reviews them:
// 01, 02, 03, 04, 05, 06, 10, 07, 08, 09. The export direction has no rules yet.
package sdv01
