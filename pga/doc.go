/*package pga implements 2D and 3D projective geometric algebra.

Elements of each grade are separate value types (Vector2, BiVector3, ...)
whose products are named after the right hand operand: a.InnerVector(b),
a.OuterBiVector(b), a.MulTriVector(b). Geometric products return one value per
non-zero grade, lowest grade first.

Points, lines and planes wrap the element that represents them, and motors
(the even subalgebra) move them rigidly. Everything is generic over
num.Float.
*/
package pga
